package store

import (
	"context"
	"errors"
	"fmt"

	"openchains/internal/database"
	"openchains/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken username 已存在，由資料庫唯一約束保證
	ErrUsernameTaken = errors.New("username already registered")
)

// uniqueViolation SQLSTATE 23505
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateUser 新增使用者；username 重複時回傳 ErrUsernameTaken
// 不做事前查詢，唯一性完全交由資料庫約束裁決
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role, is_active, card_number)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Username,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		u.CardNumber,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, is_active, card_number, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CardNumber,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, is_active, card_number, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CardNumber,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

// ListUsers 回傳全部使用者
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, username, password_hash, role, is_active, card_number, created_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.PasswordHash,
			&u.Role,
			&u.IsActive,
			&u.CardNumber,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}

func UpdateUserRole(ctx context.Context, db database.DB, userID int, role model.Role) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET role = $1 WHERE id = $2`,
		role,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserRole: %w", err)
	}
	return nil
}

func UpdateUserCardNumber(ctx context.Context, db database.DB, userID int, cardNumber string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET card_number = $1 WHERE id = $2`,
		cardNumber,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserCardNumber: %w", err)
	}
	return nil
}

// DeleteCustomerUsers 刪除所有 customer 角色的使用者，admin 帳號一律保留
func DeleteCustomerUsers(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE role = $1`,
		model.RoleCustomer,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteCustomerUsers: %w", err)
	}
	return tag.RowsAffected(), nil
}
