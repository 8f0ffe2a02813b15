package api

import (
	"net/http"
	"testing"
)

func TestProfileFetch(t *testing.T) {
	a, _ := newTestAPI(t)
	token := registerUser(t, a, "profile@example.com")

	w := doJSON(t, a, "GET", "/api/profile/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)
	personal := data["personal"].(map[string]any)
	if personal["email"] != "profile@example.com" {
		t.Fatalf("wrong profile: %v", personal)
	}
	if personal["firstName"] != "Test" || personal["lastName"] != "User" {
		t.Fatalf("name fields missing: %v", personal)
	}

	if w := doJSON(t, a, "GET", "/api/profile/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated profile returned %d, want 401", w.Code)
	}
}

func TestProfileApplications(t *testing.T) {
	a, _ := newTestAPI(t)
	alice := registerUser(t, a, "alice@example.com")
	bob := registerUser(t, a, "bob@example.com")

	createApplication(t, a, alice, "Acme")
	createApplication(t, a, alice, "Globex")

	w := doJSON(t, a, "GET", "/api/profile/applications", alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("history has %d entries, want 2", len(data))
	}

	// Someone else's history stays theirs
	w = doJSON(t, a, "GET", "/api/profile/applications", bob, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Body.String())
	}
	if len(decode(t, w)["data"].([]any)) != 0 {
		t.Fatal("one user can read another's application history")
	}
}
