package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session representa uma sessão autenticada no painel
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims são as informações carregadas no token JWT
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
