package security

import (
	"strings"
	"testing"
)

func TestGenerateFromPassword(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("stored hash equals the plaintext password")
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}
}

func TestVerifyPasswd(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	ok, err := a.VerifyPasswd("hunter2hunter2", hash)
	if err != nil {
		t.Fatalf("verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("correct password did not verify")
	}

	ok, err = a.VerifyPasswd("wrong password", hash)
	if err != nil {
		t.Fatalf("verify returned an error: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestVerifyPasswdBadFormat(t *testing.T) {
	a := New()

	if _, err := a.VerifyPasswd("anything", "not-a-phc-hash"); err == nil {
		t.Fatal("expected an error for a malformed stored hash")
	}
}

func TestHashesAreSalted(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("same password")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := a.GenerateFromPassword("same password")
	if err != nil {
		t.Fatal(err)
	}

	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical, salt missing")
	}
}
