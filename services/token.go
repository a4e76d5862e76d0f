package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/relato-cidadao/relato-cidadao-be/model"
)

var (
	ErrTokenMissing = errors.New("token não informado")
	ErrTokenInvalid = errors.New("token inválido")
)

// TokenPayload is what a verified bearer token asserts about the caller.
type TokenPayload struct {
	Id    int64  `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

type tokenClaims struct {
	TokenPayload
	jwt.RegisteredClaims
}

// TokenService issues and verifies the HS256 bearer tokens used on
// protected routes. There is no revocation list; a token is valid until it
// expires.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token for user, valid for the configured expiry.
func (ts *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		TokenPayload: TokenPayload{Id: user.Id, Email: user.Email, Nome: user.Nome},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify validates signature and expiry and returns the embedded payload.
// Any failure collapses to ErrTokenInvalid; callers only distinguish a
// missing token from a bad one.
func (ts *TokenService) Verify(token string) (*TokenPayload, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return ts.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return &claims.TokenPayload, nil
}
