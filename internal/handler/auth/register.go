// File: internal/handler/auth/register.go
package auth

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

// RegisterHandler 公開註冊新帳號
// 角色固定為 customer；重複的 username 由唯一約束攔下並回報 400
// @Summary     Register a new user
// @Description 建立 customer 角色的新帳號
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.RegisterResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
			Role:         model.RoleCustomer,
			IsActive:     true,
		})
		if err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Message: "User registered successfully",
			UserID:  user.ID,
		})
	}
}
