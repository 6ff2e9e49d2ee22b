package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sushihentaime/blogory/internal/common"
	"github.com/sushihentaime/blogory/internal/userservice"
)

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerUserHandler accepts either a JSON body or a multipart form with an
// optional avatar image.
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input registerUserRequest
	var avatar string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartSize)

		err := r.ParseMultipartForm(maxImageSize)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		input.Name = r.FormValue("name")
		input.Email = r.FormValue("email")
		input.Password = r.FormValue("password")

		avatar, err = app.imageDataURI(r, "avatar")
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

	user, err := app.userService.Register(r.Context(), input.Name, input.Email, input.Password, avatar)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "User already exists")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{
		"success":    true,
		"message":    "Login successful",
		"token":      user.Token,
		"userName":   user.Name,
		"userAvatar": user.Avatar,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type loginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"success":    true,
		"message":    "Login successful",
		"token":      user.Token,
		"userName":   user.Name,
		"userAvatar": user.Avatar,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
