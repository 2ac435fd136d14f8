package store

import (
	"sync"

	"github.com/rakhadjo/bookshelf-be/internal/models"
	"github.com/rakhadjo/bookshelf-be/internal/policy"
)

// BookDraft carries the mutable book fields of a request payload. Nil fields
// were absent from the payload.
type BookDraft struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Year      *int    `json:"year"`
	Available *bool   `json:"available"`
}

// BookRepositoryProvider defines the interface for book storage.
type BookRepositoryProvider interface {
	List() []models.Book
	Get(id int) (models.Book, error)
	Create(draft BookDraft, owner string) (models.Book, error)
	Update(id int, identity string, draft BookDraft) (models.Book, error)
	Delete(id int, identity string) error
}

// BookRepository is the in-memory working set of book records. A single
// mutex serializes all read-modify-write sequences, so two mutations on the
// same id observe each other's complete effect.
type BookRepository struct {
	mu    sync.Mutex
	books []models.Book
}

// NewBookRepository creates a repository holding the given seed records.
func NewBookRepository(seed ...models.Book) *BookRepository {
	return &BookRepository{books: seed}
}

// List returns all books in insertion order.
func (r *BookRepository) List() []models.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Book, len(r.books))
	copy(out, r.books)
	return out
}

// Get retrieves a single book by id.
func (r *BookRepository) Get(id int) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Book{}, ErrNotFound
}

// Create validates the draft, assigns the next id and inserts a new record
// owned by owner. Available defaults to true when absent from the payload.
func (r *BookRepository) Create(draft BookDraft, owner string) (models.Book, error) {
	switch {
	case draft.Title == nil:
		return models.Book{}, &MissingFieldError{Field: "title"}
	case draft.Author == nil:
		return models.Book{}, &MissingFieldError{Field: "author"}
	case draft.Year == nil:
		return models.Book{}, &MissingFieldError{Field: "year"}
	}

	available := true
	if draft.Available != nil {
		available = *draft.Available
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	book := models.Book{
		ID:            r.nextIDLocked(),
		Title:         *draft.Title,
		Author:        *draft.Author,
		Year:          *draft.Year,
		Available:     available,
		OwnerUsername: owner,
	}
	r.books = append(r.books, book)
	return book, nil
}

// Update applies the fields present in the draft to the book with the given
// id. Absent fields keep their prior values; id and owner are immutable.
// Only the book's owner may update it.
func (r *BookRepository) Update(id int, identity string, draft BookDraft) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}
		if !policy.CanMutate(r.books[i], identity) {
			return models.Book{}, ErrForbidden
		}

		if draft.Title != nil {
			r.books[i].Title = *draft.Title
		}
		if draft.Author != nil {
			r.books[i].Author = *draft.Author
		}
		if draft.Year != nil {
			r.books[i].Year = *draft.Year
		}
		if draft.Available != nil {
			r.books[i].Available = *draft.Available
		}
		return r.books[i], nil
	}
	return models.Book{}, ErrNotFound
}

// Delete removes the book with the given id. Only the book's owner may
// delete it.
func (r *BookRepository) Delete(id int, identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}
		if !policy.CanMutate(r.books[i], identity) {
			return ErrForbidden
		}
		r.books = append(r.books[:i], r.books[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// nextIDLocked returns max existing id + 1, or 1 for an empty repository.
// Callers must hold r.mu.
func (r *BookRepository) nextIDLocked() int {
	next := 1
	for _, b := range r.books {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}
