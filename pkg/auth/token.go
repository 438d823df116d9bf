package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"

	// DefaultUID is assumed when no token is presented, matching the dev
	// login flow.
	DefaultUID = "U_DEV_DEFAULT"
)

// Identity is what the middleware puts into the request context.
type Identity struct {
	UID  string
	Role string
}

func Issue(secret, uid, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"uid":  uid,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	uid, _ := claims["uid"].(string)
	role, _ := claims["role"].(string)
	if uid == "" {
		return nil, errors.New("missing uid")
	}
	if role == "" {
		role = RoleFarmer
	}
	return &Identity{UID: uid, Role: role}, nil
}
