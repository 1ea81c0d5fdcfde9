package token

import (
	"github.com/go-chi/jwtauth/v5"
)

// Service verifies API access tokens. Tokens are issued out of band (by the
// identity service fronting this API); this service only validates them.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type service struct {
	auth *jwtauth.JWTAuth
}

func NewService(secret string) Service {
	return &service{
		auth: jwtauth.New("HS256", []byte(secret), nil),
	}
}

func (s *service) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}
