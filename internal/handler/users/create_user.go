// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"

	"openchains/internal/api"
	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// CreateUserHandler 管理員建立使用者，可指定角色
// 取代公開的 create-admin 路徑，僅限 admin 呼叫
// @Summary     Create a new user
// @Description 由管理員建立帳號，角色需明示 (customer 或 admin)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.RegisterResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		role := model.Role(req.Role)
		if !role.Valid() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid role"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		})
		if err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Message: "User created successfully",
			UserID:  user.ID,
		})
	}
}
