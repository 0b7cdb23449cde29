package utils

import (
	"testing"

	"urban-threads/models"
)

func TestTokenRoundTrip(t *testing.T) {
	identity := models.Identity{
		Email: "admin@urbanthreads.com",
		Name:  "Admin User",
		Role:  models.RoleAdmin,
	}

	token, err := GenerateToken(identity)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != identity.Email || claims.Name != identity.Name || claims.Role != identity.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(models.Identity{Email: "user@urbanthreads.com", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := VerifyPassword(hash, "admin123")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, _ = VerifyPassword(hash, "wrong")
	if ok {
		t.Fatal("wrong password must not verify")
	}
}
