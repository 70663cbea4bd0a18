package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/middleware"
)

type stubProfileService struct {
	registerCalled bool
	registerUID    string
	registerReq    dto.RegisterProfileRequest
	resp           *dto.ProfileResponse
	err            error
}

func (s *stubProfileService) Register(_ context.Context, uid string, req dto.RegisterProfileRequest) (*dto.ProfileResponse, error) {
	s.registerCalled = true
	s.registerUID = uid
	s.registerReq = req
	return s.resp, s.err
}

func (s *stubProfileService) Get(_ context.Context, _ string) (*dto.ProfileResponse, error) {
	return s.resp, s.err
}

func (s *stubProfileService) GetPublic(_ context.Context, _ string) (*dto.PublicProfile, error) {
	return nil, s.err
}

func (s *stubProfileService) Update(_ context.Context, _ string, _ dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return s.resp, s.err
}

func (s *stubProfileService) Delete(_ context.Context, _ string) error { return s.err }

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), middleware.UIDKey, "uid-123")
	return req.WithContext(ctx)
}

func TestRegisterProfileSuccess(t *testing.T) {
	svc := &stubProfileService{resp: &dto.ProfileResponse{UID: "uid-123", Name: "Maria Silva"}}
	resp := &stubResponseHandler{}

	h := NewProfileHandlers(&Deps{
		ResponseHandler: resp,
		ProfileSvc:      svc,
	})

	body := `{"name":"Maria Silva","zone":"Centro"}`
	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/profiles", body))

	if !svc.registerCalled {
		t.Fatalf("expected Register to be called on service")
	}
	if svc.registerUID != "uid-123" {
		t.Fatalf("service received uid %q, want uid-123", svc.registerUID)
	}
	if svc.registerReq.Name != "Maria Silva" || svc.registerReq.Zone != "Centro" {
		t.Fatalf("service received wrong payload: %+v", svc.registerReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestRegisterProfileInvalidJSON(t *testing.T) {
	svc := &stubProfileService{}
	resp := &stubResponseHandler{}

	h := NewProfileHandlers(&Deps{
		ResponseHandler: resp,
		ProfileSvc:      svc,
	})

	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/profiles", "not-json"))

	if svc.registerCalled {
		t.Fatalf("Register should not be called on service when JSON invalid")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called on invalid JSON")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("HandleError should receive a ValidationError, got %v", resp.handleError)
	}
}

func TestRegisterProfileServiceError(t *testing.T) {
	svc := &stubProfileService{err: errs.NewAlreadyExistsError("profile already exists")}
	resp := &stubResponseHandler{}

	h := NewProfileHandlers(&Deps{
		ResponseHandler: resp,
		ProfileSvc:      svc,
	})

	body := `{"name":"Maria Silva"}`
	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/profiles", body))

	if !resp.handleErrorCalled {
		t.Fatalf("expected handler to delegate error to ResponseHandler.HandleError")
	}
	if resp.handleError != svc.err {
		t.Fatalf("unexpected error passed to HandleError: %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called on service error")
	}
}
