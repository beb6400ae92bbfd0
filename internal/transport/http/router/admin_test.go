package router

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/repo/inmemory"
	"taskflow-api/internal/service"
	"taskflow-api/internal/transport/http/handler"
)

func TestAdminSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "taskflow",
		LoginTTL: 3 * time.Hour,
		TTL:      24 * time.Hour,
	}
	userSvc := service.NewUserService(inmemory.NewUserStore(), jwter)
	r := NewAdminEngine(zap.NewNop(), handler.NewAdminHandler(userSvc), jwter)

	ctx := context.Background()
	admin, err := userSvc.Register(ctx, service.RegisterInput{
		Name: "Op", Email: "op@x.com", Password: "secret1", Role: "admin",
	})
	require.NoError(t, err)
	plain, err := userSvc.Register(ctx, service.RegisterInput{
		Name: "U", Email: "u@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	adminToken, err := jwter.Issue(auth.Payload{UserID: admin.ID, Email: admin.Email, Role: admin.Role}, time.Hour)
	require.NoError(t, err)
	userToken, err := jwter.Issue(auth.Payload{UserID: plain.ID, Email: plain.Email, Role: plain.Role}, time.Hour)
	require.NoError(t, err)

	t.Run("requires admin role", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/admin/v1/users", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		w = doJSON(r, http.MethodGet, "/admin/v1/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lists users", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/admin/v1/users?q=u@x.com", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		assert.Equal(t, float64(1), out["total"])
	})

	t.Run("bans a user", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/v1/users/"+plain.ID+"/ban", adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		w = doJSON(r, http.MethodPost, "/admin/v1/users/"+plain.ID+"/ban", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
