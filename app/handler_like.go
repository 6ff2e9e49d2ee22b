package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogory/internal/common"
	"github.com/sushihentaime/blogory/internal/likeservice"
)

func (app *application) addLikeHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	like, err := app.likeService.AddLike(r.Context(), blogID, app.getUserContext(r))
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, likeservice.ErrAlreadyLiked):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Already liked")
		case errors.Is(err, likeservice.ErrBlogNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Blog not found")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"success": true, "message": "Like added", "like": like}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) removeLikeHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.likeService.RemoveLike(r.Context(), blogID, app.getUserContext(r))
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, likeservice.ErrLikeNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Like not found")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Like removed successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getLikeHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	status, err := app.likeService.GetLike(r.Context(), blogID, app.getUserContext(r))
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, likeservice.ErrBlogNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Blog not found")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Fetch like", "result": status}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
