package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCommand(t *testing.T, r *gin.Engine, command string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"command": {command}}
	req := httptest.NewRequest(http.MethodPost, "/terminal", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter()
}

func TestTerminalEndpointExecutesCommand(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "whoami")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "software developer")
	assert.Contains(t, w.Body.String(), `data-kind="info"`)
}

func TestTerminalEndpointBlankInput(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "   ")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTerminalEndpointUnknownCommand(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "nosuchcmd")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Command not found: nosuchcmd")
	assert.Contains(t, w.Body.String(), `data-kind="error"`)
}

func TestTerminalEndpointMissingFile(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "cat missing.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cat: missing.txt: No such file or directory")
}

func TestTerminalEndpointCarriesSideEffectAction(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "github")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-action="open"`)
	assert.Contains(t, w.Body.String(), "https://github.com/Zachkp")

	w = postCommand(t, r, "clear")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-action="clear"`)
}

func TestTerminalEndpointEscapesUntrustedText(t *testing.T) {
	r := newTestRouter()

	w := postCommand(t, r, "<script>alert(1)</script>")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestTerminalCommandsListing(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/terminal/commands", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{"help", "whoami", "ls", "cat", "cv", "resume", "exit"} {
		assert.Contains(t, w.Body.String(), name)
	}
}

func TestHomePageRenders(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1") // keep the tracking goroutine out of the test
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "terminal-output")
	assert.Contains(t, w.Body.String(), "Muay Thai")
}
