package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(password string) (string, error)
	Logout(sessionID string) error
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	sessions     *SessionStore
	now          func() time.Time
}

// NewService prepara o serviço com o hash da senha compartilhada do painel
func NewService(cfg config.Auth) (*Service, error) {
	if cfg.Password == "" || cfg.SecretKey == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "senha e chave secreta são obrigatórias")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	return &Service{
		passwordHash: hash,
		secretKey:    []byte(cfg.SecretKey),
		tokenTTL:     cfg.TokenTTL,
		sessions:     NewSessionStore(),
		now:          time.Now,
	}, nil
}

func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar sessão")
	}

	now := s.now()
	session := domain.Session{
		ID:        sessionID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	token, err := s.generateJWT(session)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	s.sessions.Save(session)
	logrus.WithField("expires_at", session.ExpiresAt.Format(time.RFC3339)).Info("Sessão criada")

	return token, nil
}

func (s *Service) Logout(sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		return NewSessionAuthError(ErrSessionNotFound, apiErrors.ErrInvalidToken, sessionID, "")
	}

	logrus.Info("Sessão encerrada")
	return nil
}

func (s *Service) generateJWT(session domain.Session) (string, error) {
	claims := domain.Claims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken exige um JWT válido e uma sessão ainda ativa
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if _, ok := s.sessions.Get(claims.SessionID, s.now()); !ok {
		return nil, NewSessionAuthError(ErrSessionNotFound, apiErrors.ErrInvalidToken, claims.SessionID, "")
	}

	return claims, nil
}
