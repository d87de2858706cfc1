// File: internal/handler/generator/rotate.go
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

// RotateHandler 抽樣使用者並換發新卡號
// @Summary     Rotate card numbers
// @Description 隨機抽樣 min(users/3, 10) 位使用者並換發新的 16 位卡號
// @Tags        generator
// @Produce     json
// @Success     200 {object} api.RotateResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /generator/rotate [post]
func RotateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		rotated, err := rotateCards(c.Request().Context(), db)
		if err != nil {
			if errors.Is(err, service.ErrNotEnoughUsers) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Not enough users to perform rotation. Need at least 6 users."})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.RotateResponse{
			Message:      fmt.Sprintf("Rotation completed for %d users", len(rotated)),
			RotatedUsers: len(rotated),
			Users:        make([]api.RotatedUser, 0, len(rotated)),
		}
		for _, u := range rotated {
			resp.Users = append(resp.Users, api.RotatedUser{ID: u.ID, Username: u.Username})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
