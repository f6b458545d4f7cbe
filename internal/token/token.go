package token

import (
	"crypto/rsa"
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims carried by every access token. Email is the lookup key used to
// resolve the actor, role and user id ride along for convenience.
type Claims struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	jwtv5.RegisteredClaims
}

// Manager signs tokens with the RSA private key and verifies them with the
// public key, so verification never needs the signing secret.
type Manager struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	bcryptCost int
}

func NewManager(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, ttl time.Duration, bcryptCost int) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Manager{
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        ttl,
		bcryptCost: bcryptCost,
	}
}

func (m *Manager) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), m.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (m *Manager) VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

func (m *Manager) IssueToken(email, role, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:  email,
		Role:   role,
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodRS256, claims)
	return token.SignedString(m.privateKey)
}

// VerifyToken checks the signature and expiry and requires every identity
// claim. A correctly signed token missing role, user id, or an expiry is
// invalid, not partially trusted.
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodRSA); !ok {
			return nil, ErrTokenInvalid
		}
		return m.publicKey, nil
	}, jwtv5.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Email == "" || claims.Role == "" || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
