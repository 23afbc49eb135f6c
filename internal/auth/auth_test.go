package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret-key",
		JWTExpiryHours: 1,
	}
}

func staffWithPassword(t *testing.T, password string) *models.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	member := &models.Staff{
		FirmID:       uuid.New(),
		FullName:     "Asha Verma",
		Role:         "Lead Photographer",
		Phone:        "+911234567890",
		Email:        "asha@studio.test",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	member.ID = uuid.New()
	return member
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)
	staffID := uuid.New()
	firmID := uuid.New()

	token, err := svc.GenerateJWT(staffID, firmID, "asha@studio.test", "Asha Verma", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, staffID.String(), claims.StaffID)
	assert.Equal(t, firmID.String(), claims.FirmID)
	assert.Equal(t, "asha@studio.test", claims.Email)
	assert.Equal(t, "studio-manager-backend", claims.Issuer)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)
	token, err := svc.GenerateJWT(uuid.New(), uuid.New(), "a@b.test", "A", time.Hour)
	require.NoError(t, err)

	other := NewAuthService(&config.Config{JWTSecret: "different-secret"}, nil)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	svc := NewAuthService(testConfig(), nil)
	token, err := svc.GenerateJWT(uuid.New(), uuid.New(), "a@b.test", "A", -time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffRepo := mocks.NewMockStaffRepositoryInterface(ctrl)
	member := staffWithPassword(t, "correct-horse")
	staffRepo.EXPECT().GetByEmail(member.Email).Return(member, nil)

	svc := NewAuthService(testConfig(), staffRepo)
	resp, err := svc.Login(&LoginRequest{Email: member.Email, Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, member.ID.String(), resp.StaffID)
	assert.Equal(t, member.FirmID.String(), resp.FirmID)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, member.FirmID.String(), claims.FirmID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffRepo := mocks.NewMockStaffRepositoryInterface(ctrl)
	member := staffWithPassword(t, "correct-horse")
	staffRepo.EXPECT().GetByEmail(member.Email).Return(member, nil)

	svc := NewAuthService(testConfig(), staffRepo)
	_, err := svc.Login(&LoginRequest{Email: member.Email, Password: "battery-staple"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffRepo := mocks.NewMockStaffRepositoryInterface(ctrl)
	staffRepo.EXPECT().GetByEmail("nobody@studio.test").Return(nil, errors.New("record not found"))

	svc := NewAuthService(testConfig(), staffRepo)
	_, err := svc.Login(&LoginRequest{Email: "nobody@studio.test", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffRepo := mocks.NewMockStaffRepositoryInterface(ctrl)
	member := staffWithPassword(t, "correct-horse")
	member.IsActive = false
	staffRepo.EXPECT().GetByEmail(member.Email).Return(member, nil)

	svc := NewAuthService(testConfig(), staffRepo)
	_, err := svc.Login(&LoginRequest{Email: member.Email, Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrStaffInactive)
}

func TestLogin_NoPasswordSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffRepo := mocks.NewMockStaffRepositoryInterface(ctrl)
	member := staffWithPassword(t, "correct-horse")
	member.PasswordHash = ""
	staffRepo.EXPECT().GetByEmail(member.Email).Return(member, nil)

	svc := NewAuthService(testConfig(), staffRepo)
	_, err := svc.Login(&LoginRequest{Email: member.Email, Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewAuthService(testConfig(), nil)
	middleware := NewAuthMiddleware(svc)

	firmID := uuid.New()
	token, err := svc.GenerateJWT(uuid.New(), firmID, "asha@studio.test", "Asha Verma", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		got, ok := FirmID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"firm_id": got.String()})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, strings.Contains(rec.Body.String(), firmID.String()))
			}
		})
	}
}
