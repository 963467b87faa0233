package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixify/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T, role string, isBlocked blockChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", requireRole(role, isBlocked), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": PrincipalID(c)})
	})
	return r
}

func doAuthRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleRejectsBlockedPrincipal(t *testing.T) {
	token, err := utils.GenerateToken("u1", utils.RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := newAuthRouter(t, utils.RoleUser, func(id string) (bool, error) {
		return true, nil
	})

	// A fresh, valid token must not get a blocked account through.
	w := doAuthRequest(r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("blocked principal got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleAllowsUnblockedPrincipal(t *testing.T) {
	token, err := utils.GenerateToken("u1", utils.RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := newAuthRouter(t, utils.RoleUser, func(id string) (bool, error) {
		return false, nil
	})

	w := doAuthRequest(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("unblocked principal got %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	token, err := utils.GenerateToken("u1", utils.RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := newAuthRouter(t, utils.RoleProvider, func(id string) (bool, error) {
		return false, nil
	})

	w := doAuthRequest(r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("user token on provider route got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleRejectsMissingAndExpiredTokens(t *testing.T) {
	r := newAuthRouter(t, utils.RoleUser, func(id string) (bool, error) {
		return false, nil
	})

	if w := doAuthRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token got %d, want %d", w.Code, http.StatusUnauthorized)
	}

	expired, err := utils.GenerateToken("u1", utils.RoleUser, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := doAuthRequest(r, expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleRejectsOnCheckerFailure(t *testing.T) {
	token, err := utils.GenerateToken("u1", utils.RoleUser, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := newAuthRouter(t, utils.RoleUser, func(id string) (bool, error) {
		return false, errors.New("db down")
	})

	w := doAuthRequest(r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("checker failure got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
