package auth

import (
	"fmt"
	"time"

	"studio-manager-backend/internal/config"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims represents JWT token claims. FirmID scopes every authenticated
// request to one tenant.
type AuthClaims struct {
	StaffID  string `json:"staff_id"`
	FirmID   string `json:"firm_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	StaffID     string `json:"staff_id"`
	FirmID      string `json:"firm_id"`
	FullName    string `json:"full_name"`
}

// AuthService provides email/password authentication for staff accounts
type AuthService struct {
	cfg       *config.Config
	staffRepo repository.StaffRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, staffRepo repository.StaffRepositoryInterface) *AuthService {
	return &AuthService{
		cfg:       cfg,
		staffRepo: staffRepo,
	}
}

// Login verifies credentials and issues a JWT. Failures never distinguish
// unknown emails from wrong passwords.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	member, err := s.staffRepo.GetByEmail(req.Email)
	if err != nil || member == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if member.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !member.IsActive {
		return nil, apperrors.ErrStaffInactive
	}

	expiry := time.Duration(s.cfg.JWTExpiryHours) * time.Hour
	token, err := s.GenerateJWT(member.ID, member.FirmID, member.Email, member.FullName, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(expiry.Seconds()),
		StaffID:     member.ID.String(),
		FirmID:      member.FirmID.String(),
		FullName:    member.FullName,
	}, nil
}

// GenerateJWT creates a signed token for a staff member
func (s *AuthService) GenerateJWT(staffID, firmID uuid.UUID, email, fullName string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		StaffID:  staffID.String(),
		FirmID:   firmID.String(),
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "studio-manager-backend",
			Subject:   staffID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateJWT validates and parses a token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
