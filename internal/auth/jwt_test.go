package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "hvlab-go-test")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "김민수", "manager")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("got user id %s, want %s", claims.UserID, userID)
	}
	if claims.Name != "김민수" || claims.Role != "manager" {
		t.Errorf("got name/role %q/%q", claims.Name, claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "hvlab-go-test").GenerateToken(uuid.New(), "김민수", "staff")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewJWTService("secret-b", "hvlab-go-test").ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "hvlab-go-test")
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}
