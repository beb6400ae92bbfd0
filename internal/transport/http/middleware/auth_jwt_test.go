package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-api/internal/core/auth"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "taskflow",
		LoginTTL: 3 * time.Hour,
		TTL:      24 * time.Hour,
	}
}

func authRouter(j *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(j))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(KeyUserID),
			"email":  c.GetString(KeyEmail),
			"role":   c.GetString(KeyRole),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	j := testJWTer()
	router := authRouter(j)

	token, err := j.Issue(auth.Payload{UserID: "u-1", Email: "a@x.com", Role: "user"}, time.Hour)
	require.NoError(t, err)
	expired, err := j.Issue(auth.Payload{UserID: "u-1"}, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Unauthorized"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Unauthorized"},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "Invalid token"},
		{"valid token", "Bearer " + token, http.StatusOK, "a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uid, role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if uid != "" {
				c.Set(KeyUserID, uid)
			}
			if role != "" {
				c.Set(KeyRole, role)
			}
		})
		r.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	tests := []struct {
		name       string
		uid        string
		role       string
		wantStatus int
	}{
		{"no identity", "", "", http.StatusForbidden},
		{"identity without role", "u-1", "", http.StatusForbidden},
		{"wrong role", "u-1", "user", http.StatusForbidden},
		{"allowed role", "u-1", "admin", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
			w := httptest.NewRecorder()
			newRouter(tt.uid, tt.role).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
