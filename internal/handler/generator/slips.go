// File: internal/handler/generator/slips.go
package generator

import (
	"errors"
	"fmt"
	"net/http"

	"openchains/internal/api"
	"openchains/internal/database"
	"openchains/internal/service"

	"github.com/labstack/echo/v4"
)

// GenerateSlipsHandler 為既有使用者批量產生 slip
// @Summary     Generate slips
// @Description 為每位持卡使用者建立指定筆數的 slip，金額均勻取樣後四捨五入至兩位
// @Tags        generator
// @Accept      json
// @Produce     json
// @Param       request body api.GenerateSlipsRequest true "產生參數"
// @Success     200 {object} api.GenerateSlipsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /generator/slips [post]
func GenerateSlipsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.GenerateSlipsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		if req.MinAmount <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "min_amount must be greater than 0"})
		}
		if req.MaxAmount <= req.MinAmount {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "max_amount must be greater than min_amount"})
		}
		if req.SlipsPerUser <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "slips_per_user must be greater than 0"})
		}

		created, usersCount, err := generateSlips(c.Request().Context(), db, req.MinAmount, req.MaxAmount, req.SlipsPerUser)
		if err != nil {
			if errors.Is(err, service.ErrNoUsers) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No users found in the system"})
			}
			// 批次中途失敗仍回報已寫入的筆數
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{
				Message: fmt.Sprintf("created %d slips before failure: %v", created, err),
			})
		}

		return c.JSON(http.StatusOK, api.GenerateSlipsResponse{
			Message:      fmt.Sprintf("Successfully created %d slips", created),
			SlipsCreated: created,
			UsersCount:   usersCount,
		})
	}
}
