package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pasalpos/pasal-api/internal/config"
	"github.com/pasalpos/pasal-api/pkg/apperror"
	"github.com/pasalpos/pasal-api/pkg/utils"
)

func newAuthFixture(cfg config.AuthConfig) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(cfg, jwtManager, zap.NewNop())
}

func TestAuthService_Login_CorrectPIN(t *testing.T) {
	service := newAuthFixture(config.AuthConfig{PIN: "1234"})

	result, err := service.Login("1234", "Himalayan Mart")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, result.SessionID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "Himalayan Mart", result.StoreName)
}

func TestAuthService_Login_WrongPIN(t *testing.T) {
	service := newAuthFixture(config.AuthConfig{PIN: "1234"})

	_, err := service.Login("9999", "")

	require.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidPIN, err)
}

func TestAuthService_Login_BlankStoreNameDefaults(t *testing.T) {
	service := newAuthFixture(config.AuthConfig{PIN: "1234"})

	result, err := service.Login("1234", "")

	require.NoError(t, err)
	assert.Equal(t, "My Kirana Store", result.StoreName)
}

func TestAuthService_Login_EachLoginOpensAFreshSession(t *testing.T) {
	service := newAuthFixture(config.AuthConfig{PIN: "1234"})

	first, err := service.Login("1234", "")
	require.NoError(t, err)
	second, err := service.Login("1234", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestAuthService_Login_PINHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("5678"), bcrypt.MinCost)
	require.NoError(t, err)

	service := newAuthFixture(config.AuthConfig{PIN: "1234", PINHash: string(hash)})

	_, err = service.Login("1234", "")
	require.Error(t, err, "the plain PIN is ignored once a hash is configured")

	result, err := service.Login("5678", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	service := newAuthFixture(config.AuthConfig{PIN: "1234"})
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	result, err := service.Login("1234", "Himalayan Mart")
	require.NoError(t, err)

	claims, err := jwtManager.ValidateSessionToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.SessionID, claims.SessionID)
	assert.Equal(t, "Himalayan Mart", claims.StoreName)

	_, err = utils.NewJWTManager("other-secret", time.Hour).ValidateSessionToken(result.Token)
	assert.Error(t, err, "a token signed with another secret must not validate")
}
