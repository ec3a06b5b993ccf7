package auth

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the lifetime of every issued bearer token.
const TokenValidity = 3 * 24 * time.Hour

var (
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
)

// InitKeys loads the RS256 signing key pair from PEM files. Paths come
// from JWT_PRIVATE_KEY / JWT_PUBLIC_KEY, defaulting to the keys/ layout
// the deployment ships with.
func InitKeys() error {
	privatePath := os.Getenv("JWT_PRIVATE_KEY")
	if privatePath == "" {
		privatePath = "keys/jwtRS256.key"
	}

	publicPath := os.Getenv("JWT_PUBLIC_KEY")
	if publicPath == "" {
		publicPath = "keys/jwtRS256.key.pub"
	}

	privatePEM, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("reading private key: %w", err)
	}

	privateKey, err = jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}

	publicPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("reading public key: %w", err)
	}

	publicKey, err = jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return fmt.Errorf("parsing public key: %w", err)
	}

	return nil
}

// GenerateToken issues a bearer token whose subject is the internal user id.
func GenerateToken(userID uint) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("signing key not initialized")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(privateKey)
}

// VerifyToken checks the signature and expiry of a bearer token and
// returns the user id carried in its subject.
func VerifyToken(tokenString string) (uint, error) {
	if publicKey == nil {
		return 0, fmt.Errorf("verification key not initialized")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return publicKey, nil
	})

	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("missing subject claim")
	}

	userID, err := strconv.ParseUint(subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed subject claim")
	}

	return uint(userID), nil
}
