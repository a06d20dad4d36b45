package security_test

import (
	"strings"
	"testing"

	"github.com/givehub/backend/internal/security"
)

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(hash, "secret1") {
		t.Fatal("hash contains plaintext")
	}
	if !security.CheckPassword(hash, "secret1") {
		t.Fatal("correct password rejected")
	}
	if security.CheckPassword(hash, "secret2") {
		t.Fatal("wrong password accepted")
	}
}
