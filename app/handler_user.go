package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogory/internal/common"
	"github.com/sushihentaime/blogory/internal/userservice"
)

func (app *application) getAllAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := app.userService.GetAllAuthors(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "All authors", "authorCount": len(authors), "authors": authors}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := app.readIDParam(r, "authorId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	author, err := app.userService.GetAuthor(r.Context(), authorID)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Author not found")
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Author fetch", "author": author}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
