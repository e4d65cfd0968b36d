package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenExpired inspects the exp claim of a JWT access token without
// verifying its signature; the client only needs a hint about whether a
// refresh is worth attempting. Tokens that cannot be parsed or carry no exp
// claim are treated as not expired and left for the backend to reject.
func accessTokenExpired(access string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
