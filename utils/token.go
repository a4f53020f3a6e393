package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenPair bundles the access and refresh tokens issued at sign-in.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenID      string `json:"-"`
}

// TokenClaims is what auth middleware extracts from a verified access token.
type TokenClaims struct {
	UserID  string
	TokenID string
}

// GenerateTokenPair mints an access token (24h) and a refresh token (7d) for
// the user. The access token carries a jti so individual sessions can be
// revoked.
func GenerateTokenPair(userID, secret string) (*TokenPair, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID,
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTokenTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID,
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		TokenID:      tokenID,
	}, nil
}

// ParseAccessToken verifies a token and returns its claims.
func ParseAccessToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("missing user id claim")
	}
	tokenID, _ := claims["jti"].(string)

	return &TokenClaims{UserID: userID, TokenID: tokenID}, nil
}
