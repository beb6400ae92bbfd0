package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/pagination"
	"taskflow-api/internal/service"
	"taskflow-api/internal/transport/http/middleware"
	"taskflow-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": u})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    gin.H{"user": user, "token": token},
	})
}

func (h *UserHandler) List(c *gin.Context) {
	opts := pagination.Paginate(c.Query("page"), pageSizeQuery(c))
	items, meta, err := h.users.List(c.Request.Context(), opts, c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Users fetched",
		"data":    gin.H{"pagination": meta, "items": items},
	})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User fetched", "data": u})
}

type updateUserReq struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "data": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.MapError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}

// ownerID pulls the authenticated identity attached by the auth middleware.
func ownerID(c *gin.Context) string { return c.GetString(middleware.KeyUserID) }

// pageSizeQuery accepts both limit and its pageSize alias.
func pageSizeQuery(c *gin.Context) string {
	if v := c.Query("limit"); v != "" {
		return v
	}
	return c.Query("pageSize")
}
