package services

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"aeromart/internal/apperrors"
	"aeromart/internal/db/repositories"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

const tokenTTL = 24 * time.Hour

// AuthService registers admin accounts and issues session tokens.
// Passwords are bcrypt-hashed; tokens are HS256 JWTs carrying the
// user's email, valid for one day.
type AuthService struct {
	repo *repositories.UserRepository
}

func NewAuthService(repo *repositories.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*entities.User, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidation("Missing required fields")
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation("A user with this email is already exist")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts either email or username as the identifier and returns
// a signed token with the matched user.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (string, *entities.User, error) {
	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}

	user, err := s.repo.FindByEmailOrUsername(ctx, identifier)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.NewNotFound("User with this email not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperrors.NewValidation("Incorrect password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(jwtKey())
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// VerifyToken validates a bearer token and returns the email claim.
func VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewValidation("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.NewValidation("Invalid or expired token")
	}
	email, _ := claims["email"].(string)
	return email, nil
}
