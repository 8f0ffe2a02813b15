package security

import "testing"

func TestMakeResetToken(t *testing.T) {
	secret, digest, err := MakeResetToken()
	if err != nil {
		t.Fatalf("failed to generate reset token: %v", err)
	}

	if secret == "" || digest == "" {
		t.Fatal("empty secret or digest")
	}

	if secret == digest {
		t.Fatal("digest equals the raw secret")
	}

	// 32 bytes hex encoded
	if len(secret) != 64 {
		t.Fatalf("unexpected secret length %d", len(secret))
	}

	if HashResetToken(secret) != digest {
		t.Fatal("recomputed digest doesn't match the stored one")
	}
}

func TestMakeResetTokenUnique(t *testing.T) {
	s1, _, err := MakeResetToken()
	if err != nil {
		t.Fatal(err)
	}
	s2, _, err := MakeResetToken()
	if err != nil {
		t.Fatal(err)
	}

	if s1 == s2 {
		t.Fatal("two generated secrets are identical")
	}
}

func TestResetTokenMatches(t *testing.T) {
	if !ResetTokenMatches("abc", "abc") {
		t.Fatal("equal digests reported as different")
	}
	if ResetTokenMatches("abc", "abd") {
		t.Fatal("different digests reported as equal")
	}
}
