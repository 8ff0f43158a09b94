package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
}

func TestService_IssueAndValidate(t *testing.T) {
	service := newTestService("test-secret")
	clientID := "client-1"

	token, err := service.IssueToken("dashboard", domain.RoleClient, &clientID, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Name)
	assert.Equal(t, "dashboard", claims.RegisteredClaims.Subject)
	assert.Equal(t, domain.RoleClient, claims.RoleID)
	assert.Equal(t, "client-1", *claims.ClientID)
	assert.True(t, claims.IsClient())
}

func TestService_ValidateToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		token        func(t *testing.T) string
		expectedCode string
	}{
		{
			name: "token expirado",
			token: func(t *testing.T) string {
				service := newTestService("test-secret")
				service.now = func() time.Time { return issued }
				token, err := service.IssueToken("cron", domain.RoleAdmin, nil, time.Minute)
				require.NoError(t, err)
				return token
			},
			expectedCode: apiErrors.ErrExpiredToken,
		},
		{
			name: "assinado com outro segredo",
			token: func(t *testing.T) string {
				token, err := newTestService("other-secret").IssueToken("cron", domain.RoleAdmin, nil, time.Hour)
				require.NoError(t, err)
				return token
			},
			expectedCode: apiErrors.ErrInvalidToken,
		},
		{
			name:         "token malformado",
			token:        func(t *testing.T) string { return "not-a-jwt" },
			expectedCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService("test-secret")
			service.now = func() time.Time { return issued.Add(2 * time.Hour) }

			_, err := service.ValidateToken(tt.token(t))

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_IssueTokenInvalid(t *testing.T) {
	_, err := newTestService("").IssueToken("cron", domain.RoleAdmin, nil, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	service := newTestService("test-secret")

	_, err = service.IssueToken("cron", 9, nil, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = service.IssueToken("dashboard", domain.RoleClient, nil, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
