package security

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, jti, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if jti == "" {
		t.Fatal("empty jti")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Username != "admin" || claims.ID != jti {
		t.Errorf("claims = %+v, want username admin, jti %s", claims, jti)
	}
}

func TestParseExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)
	token, _, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("Parse accepted an expired token")
	}
}

func TestParseWrongKey(t *testing.T) {
	token, _, err := NewTokenManager("key-a", time.Hour).Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewTokenManager("key-b", time.Hour).Parse(token); err == nil {
		t.Fatal("Parse accepted a token signed with a different key")
	}
}
