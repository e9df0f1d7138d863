package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"skytails/internal/model"
)

type stubResolver struct {
	user *model.User
	err  error
}

func (s *stubResolver) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func runMiddleware(mw echo.MiddlewareFunc, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return c, rec, err
}

func TestResolveSession_AbsenceIsNotAnError(t *testing.T) {
	mw := ResolveSession(&stubResolver{err: ErrSessionNotFound})

	c, rec, err := runMiddleware(mw, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, CurrentUser(c))
}

func TestResolveSession_InvalidTokenIsNotAnError(t *testing.T) {
	mw := ResolveSession(&stubResolver{err: ErrSessionNotFound})

	c, rec, err := runMiddleware(mw, &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, CurrentUser(c))
}

func TestResolveSession_BindsIdentity(t *testing.T) {
	user := &model.User{ID: 7}
	mw := ResolveSession(&stubResolver{user: user})

	c, _, err := runMiddleware(mw, &http.Cookie{Name: SessionCookieName, Value: "token"})
	assert.NoError(t, err)
	assert.Equal(t, user, CurrentUser(c))
}

func TestRequireSession_RejectsAnonymous(t *testing.T) {
	mw := RequireSession(&stubResolver{user: &model.User{ID: 7}})

	_, _, err := runMiddleware(mw, nil)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireSession_RejectsDeadSession(t *testing.T) {
	mw := RequireSession(&stubResolver{err: ErrSessionNotFound})

	_, _, err := runMiddleware(mw, &http.Cookie{Name: SessionCookieName, Value: "token"})
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireSession_PassesResolvedIdentity(t *testing.T) {
	user := &model.User{ID: 7}
	mw := RequireSession(&stubResolver{user: user})

	c, rec, err := runMiddleware(mw, &http.Cookie{Name: SessionCookieName, Value: "token"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, CurrentUser(c))
}
