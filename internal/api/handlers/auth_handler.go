package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rakhadjo/bookshelf-be/internal/respond"
	"github.com/rakhadjo/bookshelf-be/internal/store"
	"github.com/rs/zerolog/log"
)

// TokenIssuer creates signed tokens for authenticated users.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	credentials store.CredentialStoreProvider
	tokens      TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(credentials store.CredentialStoreProvider, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{credentials: credentials, tokens: tokens}
}

// AuthPayload defines the structure for registration and login requests.
type AuthPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Request body must be JSON")
		return
	}

	err := h.credentials.Register(payload.Username, payload.Password)
	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		respond.Error(w, http.StatusBadRequest, "Missing username or password")
		return
	case errors.Is(err, store.ErrUserExists):
		respond.Error(w, http.StatusConflict, "User already exists")
		return
	case err != nil:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respond.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond.Success(w, http.StatusCreated, "User registered successfully", nil)
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, http.StatusBadRequest, "Request body must be JSON")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	// Unknown user and wrong password produce the same response, so the
	// endpoint cannot be used to enumerate usernames.
	if !h.credentials.Verify(payload.Username, payload.Password) {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(payload.Username)
	if err != nil {
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to issue token")
		respond.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond.Success(w, http.StatusOK, "Login successful", map[string]string{
		"access_token": token,
	})
}
