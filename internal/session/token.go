package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Claims represents the JWT claims carried by a portal access token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates portal access tokens.
type TokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

// NewTokenIssuer creates a token issuer from the JWT configuration.
func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(cfg.SecretKey),
		ttl:      time.Duration(cfg.AccessTokenTTL) * time.Second,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

// Issue signs an access token for the given identity.
func (ti *TokenIssuer) Issue(profile *types.UserProfile) (*types.AuthToken, error) {
	now := time.Now()

	claims := &Claims{
		Username: profile.Username,
		Role:     string(profile.Role),
		FullName: profile.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			Subject:   profile.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &types.AuthToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ti.ttl.Seconds()),
	}, nil
}

// Validate parses and verifies a signed token, returning its claims.
func (ti *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil {
		return nil, types.NewAuthenticationError(types.ErrCodeUnauthorized, "invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, types.NewAuthenticationError(types.ErrCodeUnauthorized, "invalid token claims")
	}

	return claims, nil
}
