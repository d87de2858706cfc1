// File: internal/handler/oauth/token.go
package oauth

import (
	"net/http"
	"time"

	"openchains/internal/api"
	"openchains/internal/cache"
	"openchains/internal/database"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByUsername    = store.GetUserByUsername
	authenticateUser     = service.AuthenticateUser
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
)

// TokenHandler handles the OAuth2 token endpoint (POST /api/oauth/token).
// @Summary     OAuth2 obtain access token
// @Description Issue a JWT access token (and refresh token) using OAuth2 grant_type
// @Tags        oauth
// @Accept      application/x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       grant_type    formData string true  "Grant type: password or refresh_token"
// @Param       username      formData string false "Username (required for password grant)"
// @Param       password      formData string false "Password (required for password grant)"
// @Param       refresh_token formData string false "Refresh token (required for refresh_token grant)"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /oauth/token [post]
func TokenHandler(db database.DB, rdb cache.Cache, secret string, accessTTL, refreshTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req api.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var tokenStr, newRefreshToken string

		switch req.GrantType {
		case "password":
			// 驗證使用者憑證；兩種失敗回覆一致
			user, err := getUserByUsername(ctx, db, req.Username)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect username or password"})
			}
			if err := authenticateUser(ctx, *user, req.Password); err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect username or password"})
			}

			tokenStr, err = issueAccessToken(*user, secret, accessTTL)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
			}

			newRefreshToken, err = issueRefreshToken(ctx, rdb, user.Username, user.Role, refreshTTL)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
			}

		case "refresh_token":
			data, err := validateRefreshToken(ctx, rdb, req.RefreshToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
			}
			// 重新回查使用者，角色與停用狀態以資料庫為準
			user, err := getUserByUsername(ctx, db, data.Username)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
			}
			if !user.IsActive {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
			}
			tokenStr, err = issueAccessToken(*user, secret, accessTTL)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
			}
			// reuse same refresh token
			newRefreshToken = req.RefreshToken

		default:
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unsupported grant_type"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken:  tokenStr,
			TokenType:    "bearer",
			ExpiresIn:    int(accessTTL.Seconds()),
			RefreshToken: newRefreshToken,
		})
	}
}
