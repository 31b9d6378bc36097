package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"markd/internal/delivery/http/response"
	domainerrors "markd/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks/1", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppErrorKeepsStatusAndCode(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrBookmarkAccessDenied, "bookmark owned by another user"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusForbidden, body.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BOOKMARK_ACCESS_DENIED", body.Error.Code)
	// Wrap context stays server-side; the client sees the canned message only.
	assert.NotContains(t, rec.Body.String(), "another user")
}

func TestErrorMiddleware_UnknownErrorBecomes500(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.NoContent(http.StatusNoContent))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
