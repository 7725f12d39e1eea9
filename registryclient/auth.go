// SPDX-License-Identifier: LGPL-3.0-or-later

package registryclient

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// bearerTokenTTL is how long a minted JWT bearer token remains valid,
// per the auth0 agent's short-lived-assertion pattern this registry
// client's HMAC variant is adapted from.
const bearerTokenTTL = 5 * time.Minute

// bearerToken returns the Authorization header value a request to the
// registry should carry. A static AuthToken is sent as-is; otherwise, if
// AuthSecret is configured, a short-lived HS256 JWT is minted per call
// so the shared secret itself never crosses the wire.
func bearerToken(cfg Config) (string, error) {
	if cfg.AuthToken != "" {
		return cfg.AuthToken, nil
	}
	if cfg.AuthSecret == "" {
		return "", nil
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(bearerTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AuthSecret))
	if err != nil {
		return "", fmt.Errorf("registryclient: mint bearer token: %w", err)
	}
	return signed, nil
}
