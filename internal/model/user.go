// File: internal/model/user.go
package model

import "time"

// Role 使用者角色，封閉列舉，只有 customer 與 admin 兩種值
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid 回報角色是否為已知值
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CardNumber   *string   `db:"card_number" json:"card_number,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
