package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRegister(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.Handler()

	rec := postRegister(t, h, url.Values{
		"account":  {"my_account"},
		"email":    {"e@example.com"},
		"password": {"hunter2"},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, svc.Authenticate(context.Background(), "my_account", "hunter2"))
}

func TestHandleRegisterRejections(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.Handler()

	rec := postRegister(t, h, url.Values{"account": {"x"}, "password": {"pw"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "invalid account name")

	rec = postRegister(t, h, url.Values{"account": {"my_account"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing password")

	require.Equal(t, http.StatusCreated,
		postRegister(t, h, url.Values{"account": {"my_account"}, "password": {"pw"}}).Code)
	rec = postRegister(t, h, url.Values{"account": {"my_account"}, "password": {"pw"}})
	assert.Equal(t, http.StatusConflict, rec.Code, "duplicate account name")

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
