// Package policy holds the authorization rule for book mutations. Keeping it
// in one place means update and delete cannot drift apart.
package policy

import "github.com/rakhadjo/bookshelf-be/internal/models"

// CanMutate reports whether identity may update or delete the book. Only the
// owner recorded at creation time may mutate a record; reads require
// authentication only and are not gated here.
func CanMutate(book models.Book, identity string) bool {
	return book.OwnerUsername == identity
}
