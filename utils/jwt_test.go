package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-123", RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want user-123", claims.Subject)
	}
	if claims.Role != RoleUser {
		t.Errorf("role = %q, want %q", claims.Role, RoleUser)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", RoleUser, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractClaims(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractClaims(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestGenerateTokenPair(t *testing.T) {
	access, refresh, err := GenerateTokenPair("prov-1", RoleProvider)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	for _, token := range []string{access, refresh} {
		claims, err := ExtractClaims(token)
		if err != nil {
			t.Fatalf("ExtractClaims: %v", err)
		}
		if claims.Subject != "prov-1" || claims.Role != RoleProvider {
			t.Errorf("claims = %+v", claims)
		}
	}
}
