package cryptox

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	password := []byte("Passw0rd")

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if hash == string(password) {
		t.Fatalf("hash must not equal the plaintext password")
	}

	if !VerifyPassword(password, hash) {
		t.Fatalf("expected password to verify against its own hash")
	}

	if VerifyPassword([]byte("wrong"), hash) {
		t.Fatalf("expected mismatching password to fail verification")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	password := []byte("Passw0rd")

	h1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}

	if !VerifyPassword(password, h1) || !VerifyPassword(password, h2) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword([]byte("anything"), "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must never verify")
	}
}
