package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

// Error variables
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrWrongPassword      = errors.New("wrong password")
	ErrMissingEmail       = errors.New("email is required")
	ErrInvalidName        = errors.New("name must be a non-empty string")
	ErrUserNotCreated     = errors.New("error creating user")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (string, error)
	SetFirstName(ctx context.Context, email, firstName string, updatedAt time.Time) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// AuthService handles registration, login, and profile updates.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new account and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Errorw("email id already exists", "email", email)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, models.UserDB{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}
	if userID == "" {
		logger.Log.Errorw("insert did not yield a user id", "email", email)
		return "", ErrUserNotCreated
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	logger.Log.Infow("user registered successfully", "email", email)
	return token, nil
}

// Login authenticates an account and returns a token plus the stored first name.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", ErrMissingCredentials
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("passwords do not match", "email", email)
		return "", "", ErrWrongPassword
	}

	token, err := svc.jwt.Generate(ctx, user.ID.Hex())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", "", err
	}

	return token, user.FirstName, nil
}

// UpdateProfile sets the first name of the account identified by email and
// returns a freshly issued token.
func (svc *AuthService) UpdateProfile(ctx context.Context, email, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidName
	}
	if email == "" {
		return "", ErrMissingEmail
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	updated, err := svc.writer.SetFirstName(ctx, email, name, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return "", err
	}
	if updated == nil {
		return "", ErrUserDoesNotExist
	}

	token, err := svc.jwt.Generate(ctx, updated.ID.Hex())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
