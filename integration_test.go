package errtrace_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jmgilman/go/errtrace"
	"github.com/stretchr/testify/require"
)

var errNoRows = errors.New("no rows in result set")

// findUser simulates a repository call that fails in the storage layer.
func findUser(ctx context.Context, id string) error {
	err := fmt.Errorf("select user %s: %w", id, errNoRows)
	errtrace.AddTo(ctx, errtrace.NewRecord(errtrace.OriginDatabase, errtrace.TypeNotFound, err))
	return err
}

// withTrace attaches a fresh trace to every request and reports its top
// record when the handler leaves anything on it.
func withTrace(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace := errtrace.New(errtrace.WithID(r.Header.Get("X-Request-ID")))
		next.ServeHTTP(w, r.WithContext(errtrace.NewContext(r.Context(), trace)))

		if trace.Len() == 0 {
			return
		}
		trace.Log(r.Context(), logger)
		top := trace.Top()
		status := http.StatusInternalServerError
		if top.Type() == errtrace.TypeNotFound {
			status = http.StatusNotFound
		}
		http.Error(w, top.Message(), status)
	})
}

func TestRequestWorkflow_TopErrorReported(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	handler := withTrace(logger, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := findUser(ctx, "12345"); err != nil {
			trace, _ := errtrace.FromContext(ctx)
			trace.Add(errtrace.OriginServer, errtrace.TypeNotFound, errors.New("user not found"))
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/12345", nil)
	req.Header.Set("X-Request-ID", "req-12345")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "user not found", strings.TrimSpace(rec.Body.String()))

	// Full chain is logged, newest first
	out := logs.String()
	require.Contains(t, out, "trace_id=req-12345")
	first := strings.Index(out, `msg="user not found"`)
	second := strings.Index(out, `msg="select user 12345: no rows in result set"`)
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestRequestWorkflow_GenericFallback(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	handler := withTrace(logger, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		trace, _ := errtrace.FromContext(r.Context())
		trace.AddGenericError()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, errtrace.GenericMessage, strings.TrimSpace(rec.Body.String()))
}

func TestRequestWorkflow_Success(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	handler := withTrace(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, logs.String())
}

func TestRequestWorkflow_TracePerRequest(t *testing.T) {
	const requests = 50

	var wg sync.WaitGroup
	traces := make([]*errtrace.Trace, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			ctx := errtrace.NewContext(context.Background(), errtrace.New())
			for j := 0; j <= i%5; j++ {
				_ = findUser(ctx, fmt.Sprintf("%d-%d", i, j))
			}
			traces[i], _ = errtrace.FromContext(ctx)
		}(i)
	}
	wg.Wait()

	for i, trace := range traces {
		require.Equal(t, i%5+1, trace.Len())
		require.Equal(t, fmt.Sprintf("select user %d-%d: no rows in result set", i, i%5), trace.Top().Message())
		require.True(t, errors.Is(trace.Top(), errNoRows))
	}
}
