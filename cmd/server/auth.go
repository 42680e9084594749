package main

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	tokenHeader  = "X-API-Token"
	bearerPrefix = "Bearer "
)

// tokenAuth guards write endpoints with a shared token. An empty token disables the check.
type tokenAuth struct {
	token []byte
}

func newTokenAuth(token string) *tokenAuth {
	return &tokenAuth{token: []byte(strings.TrimSpace(token))}
}

func (a *tokenAuth) enabled() bool {
	return len(a.token) > 0
}

func (a *tokenAuth) validate(provided string) bool {
	if !a.enabled() {
		return true
	}
	if provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare(a.token, []byte(provided)) == 1
}

func (a *tokenAuth) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.validate(requestToken(r)) {
			w.Header().Set("WWW-Authenticate", `Bearer realm="pricer"`)
			respondError(w, http.StatusUnauthorized, "invalid or missing API token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestToken(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(tokenHeader)); v != "" {
		return v
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authz, bearerPrefix))
	}
	return ""
}
