package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sushihentaime/blogory/internal/blogservice"
	"github.com/sushihentaime/blogory/internal/common"
	"github.com/sushihentaime/blogory/internal/userservice"
)

type createBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// createBlogHandler accepts a multipart form with an optional img file, or a
// plain JSON body.
func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input createBlogRequest
	var image string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartSize)

		err := r.ParseMultipartForm(maxImageSize)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		input.Title = r.FormValue("title")
		input.Description = r.FormValue("description")

		image, err = app.imageDataURI(r, "img")
		if err != nil {
			if isImageError(err) {
				app.badRequestErrorResponse(w, r, err)
			} else {
				app.serverErrorResponse(w, r, err)
			}
			return
		}
	} else {
		err := app.parseJSON(w, r, &input)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}
	}

	req := &blogservice.CreateBlogRequest{
		Title:       input.Title,
		Description: input.Description,
		Image:       image,
		UserID:      app.getUserContext(r),
	}

	blog, err := app.blogService.CreateBlog(r.Context(), req)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.invalidAuthenticationTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"success": true, "message": "Blog created", "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.GetBlogs(r.Context(), limit, offset)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "All blogs", "blogCount": len(blogs), "blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Blog not found")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Blog fetch", "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getYourBlogsHandler(w http.ResponseWriter, r *http.Request) {
	userID := app.getUserContext(r)

	author, err := app.userService.GetAuthor(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Author not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Fetch author blogs", "author": author}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getLikedBlogsHandler(w http.ResponseWriter, r *http.Request) {
	userID := app.getUserContext(r)

	blogs, err := app.blogService.GetLikedBlogs(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Fetch liked blogs", "blogCount": len(blogs), "blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
