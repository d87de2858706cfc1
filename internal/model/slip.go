// File: internal/model/slip.go
package model

import "time"

// Slip 測試用金流紀錄，card_number 僅以值對應 User.CardNumber，無外鍵
type Slip struct {
	ID         int       `db:"id" json:"id"`
	CardNumber string    `db:"card_number" json:"card_number"`
	Amount     float64   `db:"amount" json:"amount"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
