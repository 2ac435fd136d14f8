package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	token, err := ts.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	username, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if username != "alice" {
		t.Errorf("got username %q, want alice", username)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)
	other := NewTokenService([]byte("a-different-secret"), time.Hour)

	token, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := ts.Verify(token); err == nil {
		t.Error("token signed with another secret must not verify")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ts.Verify(tok); err == nil {
			t.Errorf("Verify(%q) should fail", tok)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	ts := NewTokenService(testSecret, -time.Minute)

	token, err := ts.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := ts.Verify(token); err == nil {
		t.Error("expired token must not verify")
	}
}

func TestMiddleware(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	var sawIdentity string
	handler := ts.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawIdentity, _ = Identity(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token, err := ts.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic " + token, http.StatusUnauthorized},
		{"tampered token", "Bearer " + token + "x", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sawIdentity = ""
			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK && sawIdentity != "alice" {
				t.Errorf("handler saw identity %q, want alice", sawIdentity)
			}
			if tc.wantStatus == http.StatusUnauthorized && sawIdentity != "" {
				t.Error("handler must not run for unauthenticated requests")
			}
		})
	}
}
