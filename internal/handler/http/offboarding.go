package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/offboarding"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type OffboardingHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	UpdateChecklist(w http.ResponseWriter, r *http.Request)
	ScheduleExitInterview(w http.ResponseWriter, r *http.Request)
	CompleteExitInterview(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	GetOffboarding(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	TerminationStats(w http.ResponseWriter, r *http.Request)
}

type offboardingHandlerImpl struct {
	offboardingService offboarding.OffboardingService
}

func NewOffboardingHandler(offboardingService offboarding.OffboardingService) OffboardingHandler {
	return &offboardingHandlerImpl{offboardingService: offboardingService}
}

func (h *offboardingHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req offboarding.StartOffboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.offboardingService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Offboarding started", result)
}

func (h *offboardingHandlerImpl) UpdateChecklist(w http.ResponseWriter, r *http.Request) {
	var req offboarding.UpdateChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.offboardingService.UpdateChecklist(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) ScheduleExitInterview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InterviewDate string `json:"interview_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	interviewDate, err := time.Parse(time.RFC3339, body.InterviewDate)
	if err != nil {
		response.BadRequest(w, "Field 'interview_date' must be an RFC3339 timestamp", nil)
		return
	}

	result, err := h.offboardingService.ScheduleExitInterview(r.Context(), chi.URLParam(r, "id"), interviewDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) CompleteExitInterview(w http.ResponseWriter, r *http.Request) {
	var req offboarding.CompleteExitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.offboardingService.CompleteExitInterview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.offboardingService.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) GetOffboarding(w http.ResponseWriter, r *http.Request) {
	result, err := h.offboardingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.offboardingService.GetByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offboardingHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	results, err := h.offboardingService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *offboardingHandlerImpl) TerminationStats(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'start' must be a date (YYYY-MM-DD)", nil)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'end' must be a date (YYYY-MM-DD)", nil)
		return
	}

	stats, err := h.offboardingService.TerminationStats(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
