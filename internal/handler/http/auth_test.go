package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/copypasta/copypasta-server/internal/mock"
	"github.com/copypasta/copypasta-server/internal/store"
	"github.com/copypasta/copypasta-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubToken returns a models.Token carrying only the signed string, which
// is all the cookie-issuing path reads.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// postForm issues a form-encoded POST through the full router.
func postForm(t *testing.T, h *Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// sessionCookieFrom extracts the session cookie from a response, failing
// the test if it is absent.
func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Register(gomock.Any(), "alice", "hunter2").
		Return(models.User{UserID: 1, Username: "alice"}, stubToken("fresh-token"), nil)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/register", url.Values{"username": {"alice"}, "password": {"hunter2"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "fresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestRegister_TrimsUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Register(gomock.Any(), "alice", "hunter2").
		Return(models.User{UserID: 1, Username: "alice"}, stubToken("t"), nil)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/register", url.Values{"username": {"  alice  "}, "password": {"hunter2"}})

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Register(gomock.Any(), "alice", "hunter2").
		Return(models.User{}, models.Token{}, store.ErrUsernameTaken)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/register", url.Values{"username": {"alice"}, "password": {"hunter2"}})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"username already taken"}`, rec.Body.String())
}

func TestRegister_BadCredentialsFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Register(gomock.Any(), "alice", "abc").
		Return(models.User{}, models.Token{}, store.ErrBadCredentialsFormat)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/register", url.Values{"username": {"alice"}, "password": {"abc"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, models.Token{}, store.ErrStore)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/register", url.Values{"username": {"alice"}, "password": {"hunter2"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Login(gomock.Any(), "alice", "hunter2").
		Return(models.User{UserID: 1, Username: "alice"}, stubToken("login-token"), nil)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/login", url.Values{"username": {"alice"}, "password": {"hunter2"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "login-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	gate.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(models.User{}, models.Token{}, store.ErrAuthFailed)

	h := newTestHandler(t, gate, &memClipboard{})

	rec := postForm(t, h, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	var revoked string
	gate := &stubGate{
		logoutFn: func(ctx context.Context, tokenString string) error {
			revoked = tokenString
			return nil
		},
	}
	h := newTestHandler(t, gate, &memClipboard{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionToken})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, testSessionToken, revoked)

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogout_WithoutSession(t *testing.T) {
	h := newTestHandler(t, &stubGate{}, &memClipboard{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}
