package store

import (
	"context"
	"fmt"

	"openchains/internal/database"
	"openchains/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateSlip(ctx context.Context, db database.DB, s *model.Slip) (*model.Slip, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO slips (card_number, amount)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		s.CardNumber,
		s.Amount,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSlip: %w", err)
	}
	return s, nil
}

// CreateSlipsBatch 以單一 batch 寫入多筆 slip，回傳實際寫入筆數
// 批次中途失敗時，已寫入的筆數仍會回報給呼叫端
func CreateSlipsBatch(ctx context.Context, db database.DB, slips []model.Slip) (int64, error) {
	if len(slips) == 0 {
		return 0, nil
	}
	b := &pgx.Batch{}
	for _, s := range slips {
		b.Queue(
			`INSERT INTO slips (card_number, amount) VALUES ($1, $2)`,
			s.CardNumber,
			s.Amount,
		)
	}
	br := db.SendBatch(ctx, b)
	defer br.Close()

	var created int64
	for range slips {
		tag, err := br.Exec()
		if err != nil {
			return created, fmt.Errorf("CreateSlipsBatch: %w", err)
		}
		created += tag.RowsAffected()
	}
	return created, nil
}

func CountSlips(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM slips`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountSlips: %w", err)
	}
	return n, nil
}

// DeleteAllSlips 無條件刪除所有 slip
func DeleteAllSlips(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM slips`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAllSlips: %w", err)
	}
	return tag.RowsAffected(), nil
}
