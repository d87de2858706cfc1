package middleware

import (
	"net/http"
	"strings"

	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 經過認證後掛載於 echo.Context 的使用者
const ContextUserKey = "user"

// 統一的 401 訊息，不區分失敗原因
const msgUnauthenticated = "could not validate credentials"

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByUsername = store.GetUserByUsername
)

func extractClaims(c echo.Context, secret string) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}
	claims, err := verifyAccessToken(parts[1], secret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}
	return claims, nil
}

// resolveUser 以 sub 回查使用者；令牌不作為使用者狀態的唯一來源
// 使用者不存在或已停用都視為未認證
func resolveUser(c echo.Context, db database.DB, secret string) (*model.User, error) {
	claims, err := extractClaims(c, secret)
	if err != nil {
		return nil, err
	}
	user, err := getUserByUsername(c.Request().Context(), db, claims.Subject)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}
	if !user.IsActive {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}
	return user, nil
}

// RequireAuth 驗證 Bearer token 並將目前使用者掛載至 context
func RequireAuth(db database.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, db, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上強制 admin 角色
func RequireAdmin(db database.DB, secret string) echo.MiddlewareFunc {
	auth := RequireAuth(db, secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			switch user.Role {
			case model.RoleAdmin:
				return next(c)
			case model.RoleCustomer:
				return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
			default:
				// 未知角色一律拒絕
				return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
			}
		})
	}
}
