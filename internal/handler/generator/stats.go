// File: internal/handler/generator/stats.go
package generator

import (
	"net/http"

	"openchains/internal/api"
	"openchains/internal/database"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	countUsers    = store.CountUsers
	countSlips    = store.CountSlips
	generateUsers = service.GenerateUsers
	generateSlips = service.GenerateSlips
	rotateCards   = service.RotateCards
	cleanup       = service.Cleanup
)

// StatsHandler 回報測試資料統計
// @Summary     Generator statistics
// @Description 回傳目前使用者與 slip 數量
// @Tags        generator
// @Produce     json
// @Success     200 {object} api.StatsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /generator/stats [get]
func StatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userCount, err := countUsers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		slipCount, err := countSlips(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.StatsResponse{
			UserCount: userCount,
			SlipCount: slipCount,
		})
	}
}
