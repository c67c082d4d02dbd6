package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserRef is the populated form of a user reference on joined reads.
type UserRef struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}

// AuthUser is the identity shape returned with a freshly issued token.
type AuthUser struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Role     string             `json:"role"`
}

func (u *User) AuthView() AuthUser {
	return AuthUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) Validate() *ValidationError {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if !ValidEmail(in.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	if len(in.Password) < MinPasswordLength {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (in *UpdateProfileInput) Validate() *ValidationError {
	if in.Username == "" && in.Email == "" {
		return &ValidationError{Message: "No updates provided"}
	}
	if in.Email != "" && !ValidEmail(in.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (in *ChangePasswordInput) Validate() *ValidationError {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return &ValidationError{Message: "Both current and new password are required"}
	}
	if len(in.NewPassword) < MinPasswordLength {
		return &ValidationError{Field: "newPassword", Message: "New password must be at least 6 characters long"}
	}
	return nil
}
