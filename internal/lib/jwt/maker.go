// Package jwt выпускает и проверяет JWT токены администраторов платёжного сервиса.
package jwt

import (
	"time"
)

// RoleAdmin роль, которой разрешено менять фич-флаги.
const RoleAdmin = "admin"

// Maker выпускает и разбирает токены с именем и ролью.
type Maker interface {
	GenerateToken(username, role string) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl подписывает токены HS256 общим секретом.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
