package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/store"
	"openchains/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type genRow struct {
	scanErr error
	id      int
}

func (r genRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = time.Now()
	return nil
}

type genUserRows struct {
	data []model.User
	idx  int
}

func (r *genUserRows) Close()                                       {}
func (r *genUserRows) Err() error                                   { return nil }
func (r *genUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *genUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *genUserRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *genUserRows) Scan(dest ...any) error {
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Username
	*dest[2].(*string) = u.PasswordHash
	*dest[3].(*model.Role) = u.Role
	*dest[4].(*bool) = u.IsActive
	*dest[5].(**string) = u.CardNumber
	*dest[6].(*time.Time) = u.CreatedAt
	return nil
}
func (r *genUserRows) Values() ([]any, error) { return nil, nil }
func (r *genUserRows) RawValues() [][]byte    { return nil }
func (r *genUserRows) Conn() *pgx.Conn        { return nil }

type genBatchResults struct{ execs int }

func (b *genBatchResults) Exec() (pgconn.CommandTag, error) {
	b.execs++
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}
func (b *genBatchResults) Query() (pgx.Rows, error) { return nil, nil }
func (b *genBatchResults) QueryRow() pgx.Row        { return nil }
func (b *genBatchResults) Close() error             { return nil }

func card(s string) *string { return &s }

func TestRandomCardNumber(t *testing.T) {
	t.Cleanup(restoreGlobals)
	c, err := RandomCardNumber()
	require.NoError(t, err)
	require.Len(t, c, 16)
	for _, r := range c {
		require.GreaterOrEqual(t, r, '0')
		require.LessOrEqual(t, r, '9')
	}

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err = RandomCardNumber()
	require.Error(t, err)
}

func TestGenerateUsers(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(2)
	defer wp.Stop()

	nextID := 0
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			nextID++
			return genRow{id: nextID}
		},
	}
	created, err := GenerateUsers(context.Background(), db, wp, 3)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, u := range created {
		require.Contains(t, u.Username, "test_user_")
		require.Equal(t, model.RoleCustomer, u.Role)
		require.NotNil(t, u.CardNumber)
		require.Len(t, *u.CardNumber, 16)
		require.Equal(t, i+1, u.ID)
	}
}

func TestGenerateUsersSkipsCollisions(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(1)
	defer wp.Stop()

	call := 0
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			call++
			if call == 2 {
				return genRow{scanErr: &pgconn.PgError{Code: "23505"}}
			}
			return genRow{id: call}
		},
	}
	created, err := GenerateUsers(context.Background(), db, wp, 3)
	require.NoError(t, err)
	require.Len(t, created, 2)
}

func TestGenerateUsersStoreError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(1)
	defer wp.Stop()

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return genRow{scanErr: errors.New("boom")}
		},
	}
	_, err := GenerateUsers(context.Background(), db, wp, 2)
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrUsernameTaken)
}

func TestGenerateSlips(t *testing.T) {
	t.Cleanup(restoreGlobals)
	users := []model.User{
		{ID: 1, Username: "a", CardNumber: card("1111222233334444")},
		{ID: 2, Username: "b"}, // 無卡號，跳過
		{ID: 3, Username: "c", CardNumber: card("5555666677778888")},
	}
	br := &genBatchResults{}
	var batched []model.Slip
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &genUserRows{data: users}, nil
		},
		SendBatchFn: func(_ context.Context, b *pgx.Batch) pgx.BatchResults {
			for _, q := range b.QueuedQueries {
				batched = append(batched, model.Slip{
					CardNumber: q.Arguments[0].(string),
					Amount:     q.Arguments[1].(float64),
				})
			}
			return br
		},
	}

	randFloat64 = func() float64 { return 0.5 }
	created, total, err := GenerateSlips(context.Background(), db, 10, 20, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), created)
	require.Equal(t, 3, total)
	require.Len(t, batched, 4)
	for _, s := range batched {
		require.Equal(t, 15.0, s.Amount)
	}
}

func TestGenerateSlipsNoUsers(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &genUserRows{}, nil
		},
	}
	_, _, err := GenerateSlips(context.Background(), db, 10, 20, 1)
	require.ErrorIs(t, err, ErrNoUsers)
}

func TestGenerateSlipsRounding(t *testing.T) {
	t.Cleanup(restoreGlobals)
	require.Equal(t, 10.67, round2(10.666666))
	require.Equal(t, 10.66, round2(10.664))
}

func TestRotateCards(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var users []model.User
	for i := 1; i <= 9; i++ {
		users = append(users, model.User{ID: i, Username: "u", CardNumber: card("0000000000000000")})
	}
	var updatedIDs []int
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &genUserRows{data: users}, nil
		},
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Len(t, args[0].(string), 16)
			updatedIDs = append(updatedIDs, args[1].(int))
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}

	randPerm = func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	rotated, err := RotateCards(context.Background(), db)
	require.NoError(t, err)
	// 9 / 3 = 3 位
	require.Len(t, rotated, 3)
	require.Equal(t, []int{1, 2, 3}, updatedIDs)
	for _, u := range rotated {
		require.NotEqual(t, "0000000000000000", *u.CardNumber)
	}
}

func TestRotateCardsNotEnoughUsers(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &genUserRows{data: make([]model.User, 5)}, nil
		},
	}
	_, err := RotateCards(context.Background(), db)
	require.ErrorIs(t, err, ErrNotEnoughUsers)
}

func TestCleanup(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "slips") {
				return pgconn.NewCommandTag("DELETE 5"), nil
			}
			return pgconn.NewCommandTag("DELETE 3"), nil
		},
	}
	usersRemoved, slipsRemoved, err := Cleanup(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, int64(3), usersRemoved)
	require.Equal(t, int64(5), slipsRemoved)
}

func TestCleanupSlipError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("e")
		},
	}
	_, _, err := Cleanup(context.Background(), db)
	require.Error(t, err)
}
