// File: internal/config/config.go
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config 啟動時載入一次，之後以參數傳遞給需要的元件，不做全域單例
type Config struct {
	Port          string `env:"PORT, default=8080"`
	DatabaseURL   string `env:"DATABASE_URL, required"`
	RedisAddr     string `env:"REDIS_ADDR, required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB, default=0"`
	JWTSecret     string `env:"JWT_SECRET, required"`

	// AccessTokenExpireMinutes 存取令牌有效分鐘數
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
	// RefreshTokenExpireHours refresh token 有效小時數
	RefreshTokenExpireHours int `env:"REFRESH_TOKEN_EXPIRE_HOURS, default=720"`

	WorkerCount int `env:"WORKER_COUNT, default=1"`
}

// Load 從環境變數讀取設定
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AccessTokenTTL 回傳存取令牌的有效期間
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTokenTTL 回傳 refresh token 的有效期間
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireHours) * time.Hour
}
