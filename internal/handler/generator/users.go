// File: internal/handler/generator/users.go
package generator

import (
	"fmt"
	"net/http"

	"openchains/internal/api"
	"openchains/internal/database"
	"openchains/internal/service"
	"openchains/internal/worker"

	"github.com/labstack/echo/v4"
)

// GenerateUsersHandler 批量產生測試使用者
// @Summary     Generate test users
// @Description 產生 1 到 1000 位測試使用者，username 撞名時跳過
// @Tags        generator
// @Accept      json
// @Produce     json
// @Param       request body api.GenerateUsersRequest true "產生參數"
// @Success     200 {object} api.GenerateUsersResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /generator/users [post]
func GenerateUsersHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.GenerateUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		if req.UserCount <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user_count must be greater than 0"})
		}
		if req.UserCount > service.MaxGeneratedUsers {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user_count must be less than or equal to 1000"})
		}

		created, err := generateUsers(c.Request().Context(), db, wp, req.UserCount)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.GenerateUsersResponse{
			Message:      fmt.Sprintf("Successfully created %d test users", len(created)),
			UsersCreated: len(created),
			Users:        make([]api.GeneratedUser, 0, len(created)),
		}
		for _, u := range created {
			gu := api.GeneratedUser{ID: u.ID, Username: u.Username}
			if u.CardNumber != nil {
				gu.CardNumber = *u.CardNumber
			}
			resp.Users = append(resp.Users, gu)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
