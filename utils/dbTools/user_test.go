package dbTools

import (
	"errors"
	"testing"
)

func validInput() *RegisterInput {
	return &RegisterInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secur3ty",
	}
}

func TestRegisterInput_Normalize(t *testing.T) {
	t.Parallel()

	in := &RegisterInput{
		Name:     "  Ann  ",
		Email:    "  Ann@X.COM ",
		Password: " secur3ty ",
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if in.Name != "Ann" {
		t.Fatalf("name not trimmed: %q", in.Name)
	}
	if in.Email != "ann@x.com" {
		t.Fatalf("email not normalised: %q", in.Email)
	}
	if in.Password != "secur3ty" {
		t.Fatalf("password not trimmed: %q", in.Password)
	}
}

func TestRegisterInput_AgeBoundaries(t *testing.T) {
	t.Parallel()

	zero := 0
	in := validInput()
	in.Age = &zero
	if err := in.Validate(); err != nil {
		t.Fatalf("age 0 should be accepted: %v", err)
	}

	negative := -1
	in = validInput()
	in.Age = &negative
	err := in.Validate()
	if err == nil {
		t.Fatalf("age -1 should be rejected")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestRegisterInput_PasswordRules(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Password = "abc123" // 6 caractères
	if err := in.Validate(); err == nil {
		t.Fatalf("6-char password should be rejected")
	}

	in = validInput()
	in.Password = "abcd123" // 7 caractères
	if err := in.Validate(); err != nil {
		t.Fatalf("7-char password should be accepted: %v", err)
	}

	in = validInput()
	in.Password = "password1"
	if err := in.Validate(); err == nil {
		t.Fatalf("password containing \"password\" should be rejected")
	}
}

func TestRegisterInput_RequiredFields(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Name = "   "
	if err := in.Validate(); err == nil {
		t.Fatalf("blank name should be rejected")
	}

	in = validInput()
	in.Email = "not-an-email"
	if err := in.Validate(); err == nil {
		t.Fatalf("malformed email should be rejected")
	}
}
