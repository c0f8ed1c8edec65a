package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims carries the caller profile needed by the notification
// authorization gate: the role set plus the per-channel sender identities.
type JWTClaims struct {
	UserID       string   `json:"id"`
	EmailAddress string   `json:"emailaddress"`
	PhoneNumber  string   `json:"phoneNumber"`
	DeviceToken  string   `json:"deviceToken"`
	Roles        []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given user with HS256.
func GenerateToken(secret []byte, user *User, ttl time.Duration) (string, error) {
	claims := &JWTClaims{
		UserID:       user.ID.Hex(),
		EmailAddress: user.EmailAddress,
		PhoneNumber:  user.PhoneNumber,
		DeviceToken:  user.DeviceToken,
		Roles:        user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a token and returns its claims. Expiry surfaces as
// jwt.ErrTokenExpired so the middleware can report it distinctly.
func ParseToken(secret []byte, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
