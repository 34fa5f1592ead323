package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/banking/internal/service"
	"github.com/benx421/banking/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	users        *mocks.MockUserManager
	accounts     *mocks.MockAccountManager
	transactions *mocks.MockTransactionManager
	health       *mocks.MockHealthChecker
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T) (http.Handler, *testMocks) {
	t.Helper()

	m := &testMocks{
		users:        mocks.NewMockUserManager(t),
		accounts:     mocks.NewMockAccountManager(t),
		transactions: mocks.NewMockTransactionManager(t),
		health:       mocks.NewMockHealthChecker(t),
	}
	handler := NewHandler(m.users, m.accounts, m.transactions, m.health, testLogger())
	return handler.Routes(), m
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func failure[T any](code service.ErrorCode, message string) service.Result[T] {
	return service.Failure[T](code, message, nil)
}
