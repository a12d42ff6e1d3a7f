package credentials

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("correct horse battery", hash) {
		t.Fatal("expected password to verify")
	}
	if CheckPassword("wrong password", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "Employer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != userID {
		t.Fatalf("expected subject %s got %s", userID, got)
	}
}

func TestManager_ParseRejectsBadTokens(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "Employer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewManager("different-secret", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}

	expired := NewManager("test-secret", -time.Minute)
	tok, err := expired.Issue(userID, "Employer")
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	if _, err := m.Parse(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}

	if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}
}
