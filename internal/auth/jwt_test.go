package auth

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret"
	userID := "test-user-id"
	username := "testuser"

	token, err := GenerateToken(secret, userID, username, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Error("Expected token to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}

	if claims.Sub != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.Sub)
	}

	if claims.Username != username {
		t.Errorf("Expected username %s, got %s", username, claims.Username)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	secret := "test-secret"
	invalidToken := "invalid.token.here"

	_, err := ParseToken(secret, invalidToken)
	if err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-one", "user-id", "user", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("secret-two", token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, "user-id", "user", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseToken(secret, tampered); err == nil {
		t.Error("Expected error for tampered token")
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, "user-id", "user", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Error("Expected error for expired token")
	}
}
