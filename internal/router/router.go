// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"openchains/internal/cache"
	"openchains/internal/config"
	"openchains/internal/database"
	"openchains/internal/handler"
	"openchains/internal/handler/auth"
	"openchains/internal/handler/generator"
	"openchains/internal/handler/oauth"
	"openchains/internal/handler/users"
	"openchains/internal/middleware"
	"openchains/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(db, cfg.JWTSecret)
	requireAdmin := middleware.RequireAdmin(db, cfg.JWTSecret)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, cfg.JWTSecret, cfg.AccessTokenTTL()))
	api.POST("/oauth/token", oauth.TokenHandler(db, rdb, cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL()))

	// 當前使用者
	api.GET("/users/me", users.GetMeHandler(), requireAuth)

	// 管理員建立帳號
	apiAdmin := api.Group("/admin", requireAdmin)
	apiAdmin.POST("/users", users.CreateUserHandler(db))

	// 管理員專屬測試資料產生器
	apiGen := api.Group("/generator", requireAdmin)
	apiGen.GET("/stats", generator.StatsHandler(db))
	apiGen.POST("/users", generator.GenerateUsersHandler(db, wp))
	apiGen.POST("/slips", generator.GenerateSlipsHandler(db))
	apiGen.POST("/rotate", generator.RotateHandler(db))
	apiGen.POST("/cleanup", generator.CleanupHandler(db))
}
