// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/token"
	"devconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and identity lookups.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult bundles the issued token with the account it belongs to.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewUserService(userRepo repository.UserRepository, tokens *token.Service) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// gravatarURL derives a stable avatar from the email address so new accounts
// have an image without uploading one.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

// Register creates an account and signs the caller in. The email must not
// already be taken; the check races with the insert, so the unique index is
// the real guard and the repository maps its violation to the same error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Avatar:   gravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{Token: tok, User: user}, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email and
// wrong password produce the same message so callers cannot probe for
// registered addresses.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password == "" {
		return nil, models.NewValidationError("Password is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{Token: tok, User: user}, nil
}

// WhoAmI returns the account for an already-authenticated caller.
func (s *UserService) WhoAmI(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
