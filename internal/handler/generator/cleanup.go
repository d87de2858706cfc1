// File: internal/handler/generator/cleanup.go
package generator

import (
	"net/http"

	"openchains/internal/api"
	"openchains/internal/database"

	"github.com/labstack/echo/v4"
)

// CleanupHandler 刪除所有 slip 與 customer 使用者
// @Summary     Cleanup test data
// @Description 刪除全部 slip 與 customer 角色使用者，admin 帳號保留
// @Tags        generator
// @Produce     json
// @Success     200 {object} api.CleanupResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /generator/cleanup [post]
func CleanupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		usersRemoved, slipsRemoved, err := cleanup(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CleanupResponse{
			UsersRemoved: usersRemoved,
			SlipsRemoved: slipsRemoved,
		})
	}
}
