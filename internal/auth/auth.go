package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdobak/go-xerrors"
	"github.com/nexusclub/nexus-board/internal/web"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminCtxKey = "admin_session"

	adminRole = "admin"
)

var NotAuthenticatedAdmin = xerrors.Message("Not authenticated admin")

// CredentialVerifier checks a plaintext admin password against whatever the
// deployment configured. The board has a single admin principal, so there is
// no lookup key.
type CredentialVerifier interface {
	Verify(plaintextPassword string) (bool, error)
}

// BcryptVerifier verifies against a configured bcrypt hash.
type BcryptVerifier struct {
	Hash []byte
}

func (verifier *BcryptVerifier) Verify(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(verifier.Hash, []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, xerrors.New(err)
	}

	return true, nil
}

type Auth struct {
	verifier CredentialVerifier
	secret   []byte
}

func New(verifier CredentialVerifier, jwtSecret string) *Auth {
	return &Auth{
		verifier: verifier,
		secret:   []byte(jwtSecret),
	}
}

func (auth *Auth) VerifyPassword(plaintextPassword string) (bool, error) {
	return auth.verifier.Verify(plaintextPassword)
}

func (auth *Auth) GenerateToken(duration time.Duration) (string, error) {
	expireAt := time.Now().Add(duration)
	claim := AdminClaim{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	signedString, err := token.SignedString(auth.secret)
	if err != nil {
		return "", xerrors.New(err)
	}

	return signedString, nil
}

func (auth *Auth) Authenticate(tokenString string) (*AdminClaim, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &AdminClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.New("unexpected signing method")
		}
		return auth.secret, nil
	})

	if err != nil {
		return nil, xerrors.New(err)
	}

	if !parsedToken.Valid {
		return nil, xerrors.New("invalid token")
	}

	claim, ok := parsedToken.Claims.(*AdminClaim)
	if !ok {
		return nil, xerrors.New("could not parse claims")
	}

	if claim.Role != adminRole {
		return nil, xerrors.New("invalid role")
	}

	return claim, nil
}

func (auth *Auth) GetAuthenticatedAdmin(r *http.Request) (*AdminClaim, error) {
	claim, ok := web.GetValueFromContext[*AdminClaim](r, AdminCtxKey)
	if !ok {
		return nil, NotAuthenticatedAdmin
	}

	return claim, nil
}

func (auth *Auth) SetAuthenticatedAdmin(r *http.Request, claim *AdminClaim) *http.Request {
	return web.AddValueToContext(r, AdminCtxKey, claim)
}

func (auth *Auth) IsAdminAuthenticated(r *http.Request) bool {
	_, err := auth.GetAuthenticatedAdmin(r)
	return err == nil
}
