// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"openchains/internal/api"
	"openchains/internal/middleware"
	"openchains/internal/model"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.MeResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok || user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "could not validate credentials"})
		}

		return c.JSON(http.StatusOK, api.MeResponse{
			Username: user.Username,
			Role:     string(user.Role),
			IsActive: user.IsActive,
		})
	}
}
