package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("bad test object id %q: %v", hex, err)
	}
	return id
}

func TestRegisterInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		input   RegisterInput
		wantErr string
	}{
		{"valid", RegisterInput{Username: "ann", Email: "ann@x.com", Password: "abcdef"}, ""},
		{"missing username", RegisterInput{Email: "ann@x.com", Password: "abcdef"}, "All fields are required"},
		{"missing email", RegisterInput{Username: "ann", Password: "abcdef"}, "All fields are required"},
		{"missing password", RegisterInput{Username: "ann", Email: "ann@x.com"}, "All fields are required"},
		{"bad email", RegisterInput{Username: "ann", Email: "not-an-email", Password: "abcdef"}, "Invalid email format"},
		{"email without tld", RegisterInput{Username: "ann", Email: "ann@x", Password: "abcdef"}, "Invalid email format"},
		{"email with spaces", RegisterInput{Username: "ann", Email: "a nn@x.com", Password: "abcdef"}, "Invalid email format"},
		{"short password", RegisterInput{Username: "ann", Email: "ann@x.com", Password: "abc"}, "Password must be at least 6 characters long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid input, got %q", err.Message)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %q, got none", tc.wantErr)
			}
			if err.Message != tc.wantErr {
				t.Errorf("Expected error %q, got %q", tc.wantErr, err.Message)
			}
		})
	}
}

func TestUpdateProfileInputValidate(t *testing.T) {
	if err := (&UpdateProfileInput{}).Validate(); err == nil || err.Message != "No updates provided" {
		t.Errorf("Empty update accepted, got %v", err)
	}
	if err := (&UpdateProfileInput{Username: "bob"}).Validate(); err != nil {
		t.Errorf("Username-only update rejected: %q", err.Message)
	}
	if err := (&UpdateProfileInput{Email: "bad"}).Validate(); err == nil || err.Message != "Invalid email format" {
		t.Errorf("Bad email accepted, got %v", err)
	}
}

func TestChangePasswordInputValidate(t *testing.T) {
	if err := (&ChangePasswordInput{NewPassword: "abcdef"}).Validate(); err == nil {
		t.Error("Missing current password accepted")
	}
	if err := (&ChangePasswordInput{CurrentPassword: "abcdef", NewPassword: "abc"}).Validate(); err == nil {
		t.Error("Short new password accepted")
	}
	if err := (&ChangePasswordInput{CurrentPassword: "abcdef", NewPassword: "ghijkl"}).Validate(); err != nil {
		t.Errorf("Valid change rejected: %q", err.Message)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("Role %q rejected", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin", "USER"} {
		if ValidRole(role) {
			t.Errorf("Role %q accepted", role)
		}
	}
}
