package auth

import "github.com/golang-jwt/jwt/v5"

type AdminClaim struct {
	Role string `json:"role"`

	jwt.RegisteredClaims
}
