package main

import (
	"errors"
	"net/http"

	"github.com/nexusclub/nexus-board/internal/core"
	"github.com/nexusclub/nexus-board/models"
)

func (app *application) getLikes(w http.ResponseWriter, r *http.Request) {
	contentID := app.readString(r.URL.Query(), "contentId", "")

	if contentID != "" {
		like, err := app.likes.GetLike(r.Context(), contentID)
		if err != nil {
			switch {
			case errors.Is(err, core.NoRecordFound):
				// Not liked is a normal outcome, not an error.
				err = app.writeJSON(w, http.StatusOK, envelope{"liked": false, "like": nil}, nil)
				if err != nil {
					app.internalErrorResponse(w, r, err)
				}
				return
			default:
				app.internalErrorResponse(w, r, err)
				return
			}
		}

		if err := app.writeJSON(w, http.StatusOK, envelope{"liked": true, "like": like}, nil); err != nil {
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	showcased, err := app.likes.GetShowcased(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if showcased == nil {
		showcased = []*models.ShowcasedItem{}
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"showcased": showcased}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) likeContent(w http.ResponseWriter, r *http.Request) {
	type likeContentPayload struct {
		ContentID    string  `json:"contentId"`
		Notes        *string `json:"notes"`
		DisplayOrder *int64  `json:"displayOrder"`
	}

	var likeContentRequest likeContentPayload

	if err := app.readJSON(w, r, &likeContentRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	if likeContentRequest.ContentID == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "contentId is required",
		})
		return
	}

	if _, err := app.content.GetContentByID(r.Context(), likeContentRequest.ContentID); err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundEntityResponse(w, r, &AppError{
				ErrorMessage: "Content not found",
				ErrorStack:   err,
			})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	// Re-liking already-featured content is fail-soft: the existing ledger
	// entry comes back unchanged with a 200.
	existing, err := app.likes.GetLike(r.Context(), likeContentRequest.ContentID)
	if err == nil {
		if err := app.writeJSON(w, http.StatusOK, envelope{"like": existing}, nil); err != nil {
			app.internalErrorResponse(w, r, err)
		}
		return
	}
	if !errors.Is(err, core.NoRecordFound) {
		app.internalErrorResponse(w, r, err)
		return
	}

	var displayOrder int64
	if likeContentRequest.DisplayOrder != nil {
		displayOrder = *likeContentRequest.DisplayOrder
	}

	like, err := app.likes.CreateLike(r.Context(), likeContentRequest.ContentID, likeContentRequest.Notes, displayOrder)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"like": like}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateLike(w http.ResponseWriter, r *http.Request) {
	type updateLikePayload struct {
		ContentID    string  `json:"contentId"`
		Notes        *string `json:"notes"`
		DisplayOrder *int64  `json:"displayOrder"`
	}

	var updateLikeRequest updateLikePayload

	if err := app.readJSON(w, r, &updateLikeRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	if updateLikeRequest.ContentID == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "contentId is required",
		})
		return
	}

	like, err := app.likes.UpdateLike(r.Context(), updateLikeRequest.ContentID, core.LikeUpdate{
		Notes:        updateLikeRequest.Notes,
		DisplayOrder: updateLikeRequest.DisplayOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundEntityResponse(w, r, &AppError{
				ErrorMessage: "Like not found",
				ErrorStack:   err,
			})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"like": like}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) unlikeContent(w http.ResponseWriter, r *http.Request) {
	contentID := app.readString(r.URL.Query(), "contentId", "")

	if contentID == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "contentId is required",
		})
		return
	}

	if err := app.likes.DeleteLike(r.Context(), contentID); err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "Content unliked successfully"}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
