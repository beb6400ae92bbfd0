package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/service"
	"taskflow-api/internal/transport/http/response"
)

// AdminHandler exposes the operator-only user management surface. Routes are
// mounted behind an admin role check.
type AdminHandler struct {
	users *service.UserService
}

func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

type adminListQ struct {
	Offset      int    `form:"offset,default=0"`
	Limit       int    `form:"limit,default=20"`
	Q           string `form:"q"`
	WithDeleted bool   `form:"with_deleted"`
}

type adminUserRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q adminListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	users, total, err := h.users.Search(c.Request.Context(), domain.UserSearch{
		Offset:      q.Offset,
		Limit:       q.Limit,
		Query:       q.Q,
		WithDeleted: q.WithDeleted,
	})
	if err != nil {
		response.MapError(c, err)
		return
	}
	rows := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, adminUserRow{
			ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": rows})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Message(c, http.StatusBadRequest, "missing id")
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
