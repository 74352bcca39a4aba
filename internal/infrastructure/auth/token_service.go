package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/ventixe/accountsvc/domain"
)

// TokenServiceImpl implements domain.TokenService with HMAC-signed tokens.
// Single-use enforcement lives in Redis: every issued token gets a jti key
// that redemption consumes atomically, so a token can be redeemed once.
type TokenServiceImpl struct {
	secretKey   []byte
	issuer      string
	ttl         time.Duration
	redisClient *redis.Client
	prefix      string
}

// NewTokenService creates a new security token service
func NewTokenService(secretKey, issuer string, ttl time.Duration, redisClient *redis.Client) domain.TokenService {
	return &TokenServiceImpl{
		secretKey:   []byte(secretKey),
		issuer:      issuer,
		ttl:         ttl,
		redisClient: redisClient,
		prefix:      "sectoken:",
	}
}

// generateJTI creates a unique token ID
func (t *TokenServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Issue implements domain.TokenService
func (t *TokenServiceImpl) Issue(ctx context.Context, accountID string, purpose domain.TokenPurpose, target string) (string, error) {
	now := time.Now()
	jti := t.generateJTI()
	claims := jwt.MapClaims{
		"sub":     accountID,
		"purpose": string(purpose),
		"target":  strings.ToLower(target),
		"iss":     t.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
		"jti":     jti,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := t.redisClient.Set(ctx, t.prefix+jti, accountID, t.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store token state: %w", err)
	}

	return token, nil
}

// Redeem implements domain.TokenService. A false return means the token
// fails its (accountID, purpose, target) binding or was already used; an
// error means the token state store could not be reached.
func (t *TokenServiceImpl) Redeem(ctx context.Context, accountID string, purpose domain.TokenPurpose, target, token string) (bool, error) {
	claims, err := t.parse(token)
	if err != nil {
		return false, nil
	}

	sub, _ := claims["sub"].(string)
	tokenPurpose, _ := claims["purpose"].(string)
	tokenTarget, _ := claims["target"].(string)
	jti, _ := claims["jti"].(string)

	if sub != accountID || tokenPurpose != string(purpose) || tokenTarget != strings.ToLower(target) || jti == "" {
		return false, nil
	}

	// Consume the jti atomically so a second redemption finds nothing.
	_, err = t.redisClient.GetDel(ctx, t.prefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume token state: %w", err)
	}

	return true, nil
}

// parse validates signature and expiry and returns the claims
func (t *TokenServiceImpl) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return t.secretKey, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
