package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justfetch/internal/engine"
	"justfetch/internal/errors"
	"justfetch/internal/model"
	"justfetch/internal/report"
)

var testFacts = model.Facts{Host: "box", Kernel: "6.1.0", Username: "alice"}

func newTestServer(renderErr, factsErr error) *Server {
	render := func(context.Context) (string, error) {
		if renderErr != nil {
			return "", renderErr
		}
		return "Kernel: 6.1.0\n", nil
	}
	facts := engine.FactProviderFunc(func(context.Context) (model.Facts, error) {
		if factsErr != nil {
			return model.Facts{}, factsErr
		}
		return testFacts, nil
	})
	rep := func(context.Context) (report.Report, error) {
		in := model.Inspection{Tags: []string{"kernel"}, Commands: []string{"uname -m"}}
		return report.New("/tmp/config", false, in, &testFacts), nil
	}
	return NewServer(render, facts, rep, zerolog.Nop())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleRender(t *testing.T) {
	rec := get(t, newTestServer(nil, nil).Handler(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Kernel: 6.1.0\n", rec.Body.String())
}

func TestHandleRenderError(t *testing.T) {
	err := errors.New(errors.ErrEmptyCommand, "empty command").WithDetail("line", 3)
	rec := get(t, newTestServer(err, nil).Handler(), "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "EMPTY_COMMAND", body["code"])
	assert.Equal(t, float64(3), body["details"].(map[string]interface{})["line"])
}

func TestHandleFacts(t *testing.T) {
	rec := get(t, newTestServer(nil, nil).Handler(), "/api/facts")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got model.Facts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testFacts, got)

	rec = get(t, newTestServer(nil, errors.New(errors.ErrFactsUnavailable, "no /proc")).Handler(), "/api/facts")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "FACTS_UNAVAILABLE")
}

func TestHandleReport(t *testing.T) {
	h := newTestServer(nil, nil).Handler()

	rec := get(t, h, "/api/report")
	assert.Equal(t, http.StatusOK, rec.Code)
	var got report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"uname -m"}, got.Inspection.Commands)
	assert.Equal(t, "6.1.0", got.Facts.Kernel)

	rec = get(t, h, "/api/report?format=text")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "[kernel] = 6.1.0")
}

func TestRoutes(t *testing.T) {
	h := newTestServer(nil, nil).Handler()

	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestServer(nil, nil).Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "Kernel: 6.1.0\n", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeBadAddress(t *testing.T) {
	err := newTestServer(nil, nil).ListenAndServe(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
