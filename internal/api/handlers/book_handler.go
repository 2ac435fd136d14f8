package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rakhadjo/bookshelf-be/internal/auth"
	"github.com/rakhadjo/bookshelf-be/internal/respond"
	"github.com/rakhadjo/bookshelf-be/internal/store"
	"github.com/rs/zerolog/log"
)

// BookHandler handles HTTP requests for book records.
type BookHandler struct {
	repo store.BookRepositoryProvider
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(repo store.BookRepositoryProvider) *BookHandler {
	return &BookHandler{repo: repo}
}

// List handles the request to get all books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	respond.Success(w, http.StatusOK, "", h.repo.List())
}

// Get handles the request to get a single book by its id.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.repo.Get(id)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	respond.Success(w, http.StatusOK, "", book)
}

// Create handles the request to create a new book. The owner is always the
// authenticated caller, regardless of the request body.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.Identity(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	var draft store.BookDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respond.Error(w, http.StatusBadRequest, "Request body must be JSON")
		return
	}

	book, err := h.repo.Create(draft, identity)
	if err != nil {
		var missing *store.MissingFieldError
		if errors.As(err, &missing) {
			respond.Error(w, http.StatusBadRequest, "Missing required field: "+missing.Field)
			return
		}
		log.Error().Err(err).Str("owner", identity).Msg("Failed to create book")
		respond.Error(w, http.StatusInternalServerError, "Failed to create book")
		return
	}

	respond.Success(w, http.StatusCreated, "Book created successfully", book)
}

// Update handles the request to update an existing book. Fields absent from
// the payload keep their prior values.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.Identity(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}

	var draft store.BookDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respond.Error(w, http.StatusBadRequest, "Request body must be JSON")
		return
	}

	book, err := h.repo.Update(id, identity, draft)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	case errors.Is(err, store.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "Unauthorized: You are not the owner of this book.")
		return
	case err != nil:
		log.Error().Err(err).Int("book_id", id).Msg("Failed to update book")
		respond.Error(w, http.StatusInternalServerError, "Failed to update book")
		return
	}

	respond.Success(w, http.StatusOK, "Book updated successfully", book)
}

// Delete handles the request to delete a book.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.Identity(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}

	err = h.repo.Delete(id, identity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	case errors.Is(err, store.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "Unauthorized: You are not the owner of this book.")
		return
	case err != nil:
		log.Error().Err(err).Int("book_id", id).Msg("Failed to delete book")
		respond.Error(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}

	respond.Success(w, http.StatusOK, "Book deleted successfully", nil)
}
