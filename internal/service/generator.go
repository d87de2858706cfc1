// File: internal/service/generator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/store"
	"openchains/internal/worker"
)

const (
	// MaxGeneratedUsers 單次產生使用者上限
	MaxGeneratedUsers = 1000
	// slipBatchSize slip 批次寫入大小
	slipBatchSize = 100
	// minRotationUsers 執行卡號輪替所需的最少使用者數
	minRotationUsers = 6
	// maxRotationSample 單次輪替抽樣上限
	maxRotationSample = 10
)

var (
	// ErrNoUsers 系統內沒有任何使用者
	ErrNoUsers = errors.New("no users found in the system")
	// ErrNotEnoughUsers 使用者不足以執行輪替
	ErrNotEnoughUsers = errors.New("not enough users to perform rotation")

	randFloat64 = rand.Float64
	randPerm    = rand.Perm
)

// RandomCardNumber 產生 16 位數字卡號
func RandomCardNumber() (string, error) {
	buf := make([]byte, 16)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	digits := make([]byte, 16)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits), nil
}

// randomPassword 為產生的測試使用者配發隨機密碼
func randomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", buf), nil
}

// GenerateUsers 批量產生測試使用者
// 呼叫端須先驗證 1 <= count <= MaxGeneratedUsers
// 密碼哈希透過 worker pool 併發計算；username 撞名時跳過該筆而不中止
func GenerateUsers(ctx context.Context, db database.DB, wp worker.Pool, count int) ([]model.User, error) {
	base := timeNow().Unix()

	type prepared struct {
		username string
		hash     string
		card     string
		err      error
	}
	users := make([]prepared, count)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		i := i
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			p := &users[i]
			p.username = fmt.Sprintf("test_user_%d_%d", base, i)
			pw, err := randomPassword()
			if err != nil {
				p.err = err
				return
			}
			if p.hash, err = HashPassword(pw); err != nil {
				p.err = err
				return
			}
			p.card, p.err = RandomCardNumber()
		})
	}
	wg.Wait()

	created := make([]model.User, 0, count)
	for i := range users {
		p := users[i]
		if p.err != nil {
			return created, p.err
		}
		u := model.User{
			Username:     p.username,
			PasswordHash: p.hash,
			Role:         model.RoleCustomer,
			IsActive:     true,
			CardNumber:   &p.card,
		}
		if _, err := store.CreateUser(ctx, db, &u); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				continue
			}
			return created, err
		}
		created = append(created, u)
	}
	return created, nil
}

// round2 四捨五入到小數第二位
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GenerateSlips 為每個持卡使用者建立 perUser 筆 slip，金額於 [min, max] 均勻取樣
// 未持卡的使用者直接跳過；寫入以批次進行，回傳實際建立筆數與使用者總數
func GenerateSlips(ctx context.Context, db database.DB, minAmount, maxAmount float64, perUser int) (int64, int, error) {
	users, err := store.ListUsers(ctx, db)
	if err != nil {
		return 0, 0, err
	}
	if len(users) == 0 {
		return 0, 0, ErrNoUsers
	}

	var created int64
	batch := make([]model.Slip, 0, slipBatchSize)
	flush := func() error {
		n, err := store.CreateSlipsBatch(ctx, db, batch)
		created += n
		batch = batch[:0]
		return err
	}

	for _, u := range users {
		if u.CardNumber == nil || *u.CardNumber == "" {
			continue
		}
		for i := 0; i < perUser; i++ {
			amount := round2(minAmount + randFloat64()*(maxAmount-minAmount))
			batch = append(batch, model.Slip{CardNumber: *u.CardNumber, Amount: amount})
			if len(batch) == slipBatchSize {
				if err := flush(); err != nil {
					return created, len(users), err
				}
			}
		}
	}
	if err := flush(); err != nil {
		return created, len(users), err
	}
	return created, len(users), nil
}

// RotateCards 抽樣 min(users/3, 10) 位使用者並換發新卡號
// 這是持久性變更：被抽中的使用者會取得全新的 16 位卡號
func RotateCards(ctx context.Context, db database.DB) ([]model.User, error) {
	users, err := store.ListUsers(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(users) < minRotationUsers {
		return nil, ErrNotEnoughUsers
	}

	sampleSize := len(users) / 3
	if sampleSize > maxRotationSample {
		sampleSize = maxRotationSample
	}

	rotated := make([]model.User, 0, sampleSize)
	for _, idx := range randPerm(len(users))[:sampleSize] {
		u := users[idx]
		card, err := RandomCardNumber()
		if err != nil {
			return rotated, err
		}
		if err := store.UpdateUserCardNumber(ctx, db, u.ID, card); err != nil {
			return rotated, err
		}
		u.CardNumber = &card
		rotated = append(rotated, u)
	}
	return rotated, nil
}

// Cleanup 刪除所有 slip 與所有 customer 使用者，admin 帳號保留
func Cleanup(ctx context.Context, db database.DB) (usersRemoved, slipsRemoved int64, err error) {
	slipsRemoved, err = store.DeleteAllSlips(ctx, db)
	if err != nil {
		return 0, 0, err
	}
	usersRemoved, err = store.DeleteCustomerUsers(ctx, db)
	if err != nil {
		return 0, slipsRemoved, err
	}
	return usersRemoved, slipsRemoved, nil
}
