package service

import (
	"context"
	"log"
	"time"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo        UserStore
	QuizRepo        QuizStore
	LeaderboardRepo LeaderboardStore
	Tokens          *TokenService
}

func NewUserService(userRepo UserStore, quizRepo QuizStore, leaderboardRepo LeaderboardStore, tokens *TokenService) *UserService {
	return &UserService{
		UserRepo:        userRepo,
		QuizRepo:        quizRepo,
		LeaderboardRepo: leaderboardRepo,
		Tokens:          tokens,
	}
}

// AuthPayload is the login/registration response: a signed token plus the
// public identity.
type AuthPayload struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

func (s *UserService) Register(ctx context.Context, input models.RegisterInput) (*AuthPayload, error) {
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}

	existing, err := s.UserRepo.FindConflicting(ctx, input.Username, input.Email, nil)
	if err != nil {
		log.Printf("Registration error: %v", err)
		return nil, ErrInternal("Error creating user. Please try again.")
	}
	if existing != nil {
		// Email conflict reported first when both collide.
		if existing.Email == input.Email {
			return nil, ErrConflict("Email already registered")
		}
		return nil, ErrConflict("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Registration error: %v", err)
		return nil, ErrInternal("Error creating user. Please try again.")
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		log.Printf("Registration error: %v", err)
		return nil, ErrInternal("Error creating user. Please try again.")
	}

	return s.authPayload(user)
}

func (s *UserService) Login(ctx context.Context, input models.LoginInput) (*AuthPayload, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrInvalid("Email and password are required")
	}

	user, err := s.UserRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		log.Printf("Login error: %v", err)
		return nil, ErrInternal("Error logging in. Please try again.")
	}
	if user == nil {
		return nil, ErrUnauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrUnauthorized("Invalid email or password")
	}

	return s.authPayload(user)
}

func (s *UserService) authPayload(user *models.User) (*AuthPayload, error) {
	token, err := s.Tokens.Generate(user)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return nil, ErrInternal("Error creating user. Please try again.")
	}
	return &AuthPayload{Token: token, User: user.AuthView()}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Profile fetch error: %v", err)
		return nil, ErrInternal("Error fetching profile")
	}
	if user == nil {
		return nil, ErrNotFound("User not found")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input models.UpdateProfileInput) (*models.User, error) {
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}

	existing, err := s.UserRepo.FindConflicting(ctx, input.Username, input.Email, &userID)
	if err != nil {
		log.Printf("Profile update error: %v", err)
		return nil, ErrInternal("Error updating profile")
	}
	if existing != nil {
		if input.Email != "" && existing.Email == input.Email {
			return nil, ErrConflict("Email already registered")
		}
		return nil, ErrConflict("Username already taken")
	}

	updates := bson.M{}
	if input.Username != "" {
		updates["username"] = input.Username
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}

	user, err := s.UserRepo.UpdateFields(ctx, userID, updates)
	if err != nil {
		log.Printf("Profile update error: %v", err)
		return nil, ErrInternal("Error updating profile")
	}
	if user == nil {
		return nil, ErrNotFound("User not found")
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input models.ChangePasswordInput) error {
	if verr := input.Validate(); verr != nil {
		return ErrInvalid(verr.Message)
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Password change error: %v", err)
		return ErrInternal("Error changing password")
	}
	if user == nil {
		return ErrNotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrInvalid("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Password change error: %v", err)
		return ErrInternal("Error changing password")
	}
	if _, err := s.UserRepo.UpdateFields(ctx, userID, bson.M{"password": string(hash)}); err != nil {
		log.Printf("Password change error: %v", err)
		return ErrInternal("Error changing password")
	}
	return nil
}

// UserStats reports how many quizzes the user authored and how many
// categories they have completed a quiz in.
type UserStats struct {
	QuizzesCreated int64 `json:"quizzesCreated"`
	QuizzesTaken   int64 `json:"quizzesTaken"`
}

func (s *UserService) Stats(ctx context.Context, userID primitive.ObjectID) (*UserStats, error) {
	created, err := s.QuizRepo.Count(ctx, bson.M{"createdBy": userID})
	if err != nil {
		log.Printf("Stats fetch error: %v", err)
		return nil, ErrInternal("Error fetching user stats")
	}
	taken, err := s.LeaderboardRepo.CountByUser(ctx, userID)
	if err != nil {
		log.Printf("Stats fetch error: %v", err)
		return nil, ErrInternal("Error fetching user stats")
	}
	return &UserStats{QuizzesCreated: created, QuizzesTaken: taken}, nil
}
