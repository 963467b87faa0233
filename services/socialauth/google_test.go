package socialauth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"testing"
)

func TestParseRSAKeyRoundtrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	n := base64.RawURLEncoding.EncodeToString(priv.PublicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(priv.PublicKey.E)).Bytes())

	got, err := parseRSAKey(n, e)
	if err != nil {
		t.Fatalf("parseRSAKey: %v", err)
	}
	if got.N.Cmp(priv.PublicKey.N) != 0 {
		t.Error("modulus does not roundtrip")
	}
	if got.E != priv.PublicKey.E {
		t.Errorf("exponent = %d, want %d", got.E, priv.PublicKey.E)
	}
}

func TestParseRSAKeyRejectsBadEncoding(t *testing.T) {
	if _, err := parseRSAKey("not-base64!!", "AQAB"); err == nil {
		t.Error("bad modulus accepted")
	}
	if _, err := parseRSAKey("AQAB", "not-base64!!"); err == nil {
		t.Error("bad exponent accepted")
	}
}
