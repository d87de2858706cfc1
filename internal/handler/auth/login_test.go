// File: internal/handler/auth/login_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"openchains/internal/database"
	"openchains/internal/model"
	"openchains/internal/service"
	"openchains/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByUsername = store.GetUserByUsername
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

// helper to build echo context
func newAuthCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newAuthCtx(e, "")
	h := LoginHandler(&database.FakeDB{}, "s", time.Minute)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newAuthCtx(e, `{"username":"a","password":"b"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// user not found
	e = echo.New()
	e.Validator = okValidator{}
	getUserByUsername = func(ctx context.Context, db database.DB, username string) (*model.User, error) {
		return nil, store.ErrNotFound
	}
	ctx, rec = newAuthCtx(e, `{"username":"a","password":"b"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Incorrect username or password")

	// authenticate error
	getUserByUsername = func(ctx context.Context, db database.DB, username string) (*model.User, error) {
		return &model.User{ID: 1, Username: "a", IsActive: true}, nil
	}
	authenticateUser = func(ctx context.Context, user model.User, password string) error {
		return service.ErrInvalidCredentials
	}
	ctx, rec = newAuthCtx(e, `{"username":"a","password":"b"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Incorrect username or password")

	// issue token error
	authenticateUser = func(ctx context.Context, user model.User, password string) error { return nil }
	issueAccessToken = func(user model.User, secret string, ttl time.Duration) (string, error) {
		return "", errors.New("sign")
	}
	ctx, rec = newAuthCtx(e, `{"username":"a","password":"b"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	issueAccessToken = func(user model.User, secret string, ttl time.Duration) (string, error) {
		return "token123", nil
	}
	ctx, rec = newAuthCtx(e, `{"username":"a","password":"b"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token123")
	require.Contains(t, rec.Body.String(), "bearer")
}
