package utils

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
)

func TestGenerateNumericOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateNumericOTP(6)
		if err != nil {
			t.Fatalf("GenerateNumericOTP: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("20 generated codes were all identical")
	}
}

func TestHashAndCheckOTP(t *testing.T) {
	hash, err := HashOTP("482913")
	if err != nil {
		t.Fatalf("HashOTP: %v", err)
	}
	if hash == "482913" {
		t.Fatal("hash must not equal the plaintext code")
	}
	if !CheckOTP(hash, "482913") {
		t.Error("correct code did not validate")
	}
	if CheckOTP(hash, "482914") {
		t.Error("wrong code validated")
	}
}

// A missing key means the TTL already deleted the record; that must
// surface as expired, never as invalid, and a live record with the
// wrong code must surface as invalid, never as expired.
func TestEvaluateOTPLookupKinds(t *testing.T) {
	hash, err := HashOTP("123456")
	if err != nil {
		t.Fatalf("HashOTP: %v", err)
	}

	cases := []struct {
		name      string
		stored    string
		lookupErr error
		code      string
		wantKind  ErrorKind
	}{
		{"missing key is expired", "", redis.Nil, "123456", KindExpired},
		{"wrong code is invalid", hash, nil, "654321", KindInvalid},
		{"store failure is internal", "", errors.New("connection refused"), "123456", KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := evaluateOTPLookup(tc.stored, tc.lookupErr, tc.code)
			if KindOf(err) != tc.wantKind {
				t.Errorf("kind = %v, want %v", KindOf(err), tc.wantKind)
			}
		})
	}

	if err := evaluateOTPLookup(hash, nil, "123456"); err != nil {
		t.Errorf("correct code against live record: %v", err)
	}
}
