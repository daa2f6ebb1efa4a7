package auth

import (
	"testing"
	"time"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("u1", "employer")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "u1" || claims.Role != "employer" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("missing jti")
	}
}

func TestJTIUniquePerToken(t *testing.T) {
	j := newTestJWTer()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		token, err := j.Issue("u1", "seeker")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		claims, err := j.Parse(token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if seen[claims.ID] {
			t.Fatalf("duplicate jti %q", claims.ID)
		}
		seen[claims.ID] = true
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("u1", "seeker")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := &JWTer{Secret: []byte("different"), Issuer: "test", TTL: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("parse with wrong secret succeeded")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	token, err := j.Issue("u1", "seeker")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("parse with wrong issuer succeeded")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	// leeway 是 60s，过期时间要给得更久
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: -2 * time.Minute}
	token, err := j.Issue("u1", "seeker")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := j.Parse(token); err == nil {
		t.Fatal("parse of expired token succeeded")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	j := newTestJWTer()
	if _, err := j.Parse("not.a.token"); err == nil {
		t.Fatal("parse of garbage succeeded")
	}
}
