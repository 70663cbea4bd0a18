package response

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	h := New(log)
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req = req.WithContext(logger.ToContext(req.Context(), log))
	rr := httptest.NewRecorder()

	h.HandleError(rr, req, err)

	var body ErrorResponse
	if decodeErr := json.NewDecoder(rr.Body).Decode(&body); decodeErr != nil {
		t.Fatalf("decoding error response: %v", decodeErr)
	}
	return rr, body
}

func TestHandleErrorDatabase(t *testing.T) {
	rr, body := handleErr(t, errs.NewDatabaseError("read", "failed to list transactions", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body.Code != "internal_error" {
		t.Fatalf("code = %q, want internal_error", body.Code)
	}
}

func TestHandleErrorDeadlineExceededIsTransient(t *testing.T) {
	rr, body := handleErr(t, errs.NewDatabaseError(
		"read", "failed to list transactions", context.DeadlineExceeded))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if body.Code != "service_unavailable" {
		t.Fatalf("code = %q, want service_unavailable", body.Code)
	}
}

func TestHandleErrorGRPCDeadlineIsTransient(t *testing.T) {
	rr, body := handleErr(t, errs.NewDatabaseError(
		"read", "failed to get profile",
		status.Error(codes.DeadlineExceeded, "context deadline exceeded")))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if body.Code != "service_unavailable" {
		t.Fatalf("code = %q, want service_unavailable", body.Code)
	}
}

func TestHandleErrorExternalService(t *testing.T) {
	rr, _ := handleErr(t, errs.NewExternalServiceError("firestore", "unavailable", true, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("transient: status = %d, want 503", rr.Code)
	}

	rr, _ = handleErr(t, errs.NewExternalServiceError("firestore", "broken", false, nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("non-transient: status = %d, want 502", rr.Code)
	}
}

func TestHandleErrorInsufficientBalance(t *testing.T) {
	rr, body := handleErr(t, errs.NewInsufficientBalanceError("request costs 3.0h but balance is 2.0h"))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	if body.Code != "insufficient_balance" {
		t.Fatalf("code = %q, want insufficient_balance", body.Code)
	}
}
