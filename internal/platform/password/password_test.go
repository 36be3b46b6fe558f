package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	ok, err := hasher.Verify("correct horse battery", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}

	ok, err = hasher.Verify("wrong password", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("expected mismatching password to fail verification")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("hash first: %v", err)
	}
	second, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("hash second: %v", err)
	}

	if first == second {
		t.Fatal("expected per-hash salts to produce distinct hashes")
	}
}

func TestHasher_MalformedHashIsAnError(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)

	if _, err := hasher.Verify("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatal("expected malformed hash to surface an error")
	}
}

func TestNewHasher_ClampsInvalidCost(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(99)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", hasher.cost)
	}
}
