package service

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/pasalpos/pasal-api/internal/config"
	"github.com/pasalpos/pasal-api/pkg/apperror"
	"github.com/pasalpos/pasal-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// defaultStoreName is used when the operator leaves the store name blank at
// login.
const defaultStoreName = "My Kirana Store"

// AuthService is the session gate: one shared PIN for the whole store, no
// user accounts. A successful login opens a fresh terminal session.
type AuthService struct {
	cfg        config.AuthConfig
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		cfg:        cfg,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginResult is what a successful login returns.
type LoginResult struct {
	Token     string    `json:"token"`
	SessionID uuid.UUID `json:"session_id"`
	StoreName string    `json:"store_name"`
}

// Login checks the PIN and mints a session token. The store name is cosmetic
// and defaults when blank.
func (s *AuthService) Login(pin, storeName string) (*LoginResult, error) {
	if !s.verifyPIN(pin) {
		s.logger.Warn("login rejected: wrong PIN")
		return nil, apperror.ErrInvalidPIN
	}

	if storeName == "" {
		storeName = defaultStoreName
	}

	sessionID := uuid.New()
	token, err := s.jwtManager.GenerateSessionToken(sessionID, storeName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("terminal session opened", zap.String("session_id", sessionID.String()))
	return &LoginResult{
		Token:     token,
		SessionID: sessionID,
		StoreName: storeName,
	}, nil
}

func (s *AuthService) verifyPIN(pin string) bool {
	if s.cfg.PINHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PINHash), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.PIN), []byte(pin)) == 1
}
