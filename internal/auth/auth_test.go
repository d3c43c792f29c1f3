package auth

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %s, want user-123", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %s, want admin", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for expired token")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("token")
	b := HashToken("token")
	if a != b {
		t.Fatalf("HashToken not deterministic: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64", len(a))
	}
	if a == HashToken("other") {
		t.Fatal("different tokens produced identical hashes")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword accepted wrong password")
	}
}

func TestNewAPIKeyFormat(t *testing.T) {
	key := NewAPIKey()
	if !strings.HasPrefix(key, "sk_live_") {
		t.Fatalf("key %q missing sk_live_ prefix", key)
	}
	if key == NewAPIKey() {
		t.Fatal("NewAPIKey returned a duplicate")
	}
}
