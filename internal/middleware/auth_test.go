package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("accepts a valid access token", func(t *testing.T) {
		token, err := GenerateAccessToken()
		if err != nil {
			t.Fatalf("failed to generate access token: %v", err)
		}

		rec := doAuthRequest(protectedRouter(), "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec := doAuthRequest(protectedRouter(), "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		rec := doAuthRequest(protectedRouter(), "Token abc")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		rec := doAuthRequest(protectedRouter(), "Bearer not.a.jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		rec := doAuthRequest(protectedRouter(), "Bearer "+token)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestValidateRefreshToken(t *testing.T) {
	t.Run("accepts a refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		claims, err := ValidateRefreshToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.TokenType != "refresh" {
			t.Errorf("expected token type refresh, got %s", claims.TokenType)
		}
	})

	t.Run("rejects an access token", func(t *testing.T) {
		token, err := GenerateAccessToken()
		if err != nil {
			t.Fatalf("failed to generate access token: %v", err)
		}

		if _, err := ValidateRefreshToken(token); err == nil {
			t.Error("expected an access token to be rejected")
		}
	})
}

func TestHashToken(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("expected deterministic hashes")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("expected different hashes for different tokens")
	}
}
