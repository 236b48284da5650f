package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nexusclub/nexus-board/internal/core"
	"github.com/nexusclub/nexus-board/internal/validator"
	"github.com/nexusclub/nexus-board/models"
)

func (app *application) listContent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := core.ContentFilter{
		UserID:      app.readString(query, "userId", ""),
		ContentID:   app.readString(query, "contentId", ""),
		ContentType: app.readString(query, "contentType", ""),
	}

	content, err := app.content.GetContent(r.Context(), filter)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if content == nil {
		content = []*models.ContentItem{}
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"content": content}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createContent(w http.ResponseWriter, r *http.Request) {
	type createContentPayload struct {
		UserID      string   `json:"userId"`
		ContentType string   `json:"contentType"`
		Title       string   `json:"title"`
		Description *string  `json:"description"`
		URL         *string  `json:"url"`
		Tags        []string `json:"tags"`
	}

	var createContentRequest createContentPayload

	if err := app.readJSON(w, r, &createContentRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(createContentRequest.UserID, "userId", "must be provided")
	v.CheckNotBlank(createContentRequest.ContentType, "contentType", "must be provided")
	v.CheckNotBlank(createContentRequest.Title, "title", "must be provided")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "userId, contentType, and title are required",
			ErrorDetails: v.Errors,
		})
		return
	}

	if !models.IsValidContentType(createContentRequest.ContentType) {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "contentType must be thought, repo, or blog",
		})
		return
	}

	// The owning account must exist before content can reference it.
	if _, err := app.accounts.GetAccountByUserID(r.Context(), createContentRequest.UserID); err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundEntityResponse(w, r, &AppError{
				ErrorMessage: "User not found",
				ErrorStack:   err,
			})
			return
		default:
			app.internalErrorResponse(w, r, err)
			return
		}
	}

	content, err := app.content.CreateContent(r.Context(), &models.ContentItem{
		UserID:      createContentRequest.UserID,
		ContentType: createContentRequest.ContentType,
		Title:       strings.TrimSpace(createContentRequest.Title),
		Description: createContentRequest.Description,
		URL:         createContentRequest.URL,
		Tags:        createContentRequest.Tags,
	})
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"content": content}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateContent(w http.ResponseWriter, r *http.Request) {
	type updateContentPayload struct {
		ID          string    `json:"id"`
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		URL         *string   `json:"url"`
		Tags        *[]string `json:"tags"`
	}

	var updateContentRequest updateContentPayload

	if err := app.readJSON(w, r, &updateContentRequest); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	if updateContentRequest.ID == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "Content ID is required",
		})
		return
	}

	content, err := app.content.UpdateContent(r.Context(), updateContentRequest.ID, core.ContentUpdate{
		Title:       updateContentRequest.Title,
		Description: updateContentRequest.Description,
		URL:         updateContentRequest.URL,
		Tags:        updateContentRequest.Tags,
	})
	if err != nil {
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

	if err := app.writeJSON(w, http.StatusOK, envelope{"content": content}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteContent(w http.ResponseWriter, r *http.Request) {
	id := app.readString(r.URL.Query(), "id", "")

	if id == "" {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: "Content ID is required",
		})
		return
	}

	if err := app.content.DeleteContent(r.Context(), id); err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "Content deleted successfully"}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
