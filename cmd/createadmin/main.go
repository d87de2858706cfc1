// File: cmd/createadmin/main.go
// createadmin 以 out-of-band 方式建立或升級 admin 帳號
// 這是公開註冊之外唯一取得 admin 角色的途徑
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/rs/zerolog"
)

var (
	newPgxPool = database.NewPgxPool
	exitFunc   = os.Exit
)

func run(ctx context.Context, args []string, log zerolog.Logger) error {
	fs := flag.NewFlagSet("createadmin", flag.ContinueOnError)
	username := fs.String("username", "admin", "admin username")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		return fmt.Errorf("password must not be empty")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	db, err := newPgxPool(ctx, dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	// 既有帳號僅做角色升級，不重設密碼
	existing, err := store.GetUserByUsername(ctx, db, *username)
	if err == nil {
		if existing.Role == model.RoleAdmin {
			log.Info().Str("username", *username).Msg("user is already an admin")
			return nil
		}
		if err := store.UpdateUserRole(ctx, db, existing.ID, model.RoleAdmin); err != nil {
			return err
		}
		log.Info().Str("username", *username).Msg("user promoted to admin")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		return err
	}
	user, err := store.CreateUser(ctx, db, &model.User{
		Username:     *username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	log.Info().Str("username", user.Username).Int("user_id", user.ID).Msg("admin user created")
	return nil
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := run(context.Background(), os.Args[1:], log); err != nil {
		log.Error().Err(err).Msg("createadmin failed")
		exitFunc(1)
	}
}
