package socialauth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

// UserInfo is the identity extracted from a verified Google ID token.
type UserInfo struct {
	Email string
	Name  string
}

// jwksCache holds Google's RSA signing keys. Google rotates them, so
// the set is refetched after an hour.
type jwksCache struct {
	mu      sync.Mutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

var googleKeys jwksCache

func (c *jwksCache) key(kid string) (*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys == nil || time.Now().After(c.expires) {
		keys, err := fetchGoogleKeys()
		if err != nil {
			return nil, err
		}
		c.keys = keys
		c.expires = time.Now().Add(time.Hour)
	}

	pub, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no Google signing key for kid %q", kid)
	}
	return pub, nil
}

func fetchGoogleKeys() (map[string]*rsa.PublicKey, error) {
	resp, err := http.Get(googleCertsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google certs: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Keys []struct {
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode Google keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(payload.Keys))
	for _, k := range payload.Keys {
		pub, err := parseRSAKey(k.N, k.E)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Google key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	return keys, nil
}

// parseRSAKey builds an rsa.PublicKey from a JWK's base64url-encoded
// modulus and exponent.
func parseRSAKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("bad modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("bad exponent: %w", err)
	}

	var exp int
	for _, b := range eb {
		exp = exp<<8 + int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: exp}, nil
}

// ValidateGoogleToken verifies a Google ID token against Google's
// published keys and checks the audience and issuer claims. Expiry is
// enforced by the parser.
func ValidateGoogleToken(tokenStr, audience string) (*UserInfo, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token missing kid header")
		}
		return googleKeys.key(kid)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid Google ID token")
	}

	if aud, ok := claims["aud"].(string); !ok || aud != audience {
		return nil, errors.New("invalid audience in Google ID token")
	}
	if iss, ok := claims["iss"].(string); !ok ||
		(iss != "accounts.google.com" && iss != "https://accounts.google.com") {
		return nil, errors.New("invalid issuer in Google ID token")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email claim not found in Google ID token")
	}
	name, _ := claims["name"].(string)

	return &UserInfo{Email: strings.ToLower(email), Name: name}, nil
}
