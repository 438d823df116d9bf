package auth

import (
	"testing"
	"time"
)

func TestIssueParseRoundTrip(t *testing.T) {
	tok, err := Issue("secret", "U123", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := Parse("secret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.UID != "U123" || id.Role != RoleAdmin {
		t.Errorf("identity = %+v", id)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, _ := Issue("secret", "U123", RoleFarmer, time.Hour)
	if _, err := Parse("other", tok); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tok, _ := Issue("secret", "U123", RoleFarmer, -time.Minute)
	if _, err := Parse("secret", tok); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("secret", "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseDefaultsRoleToFarmer(t *testing.T) {
	tok, _ := Issue("secret", "U123", "", time.Hour)
	id, err := Parse("secret", tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.Role != RoleFarmer {
		t.Errorf("role = %q, want farmer", id.Role)
	}
}
