package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/onboarding"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type OnboardingHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
	SkipTask(w http.ResponseWriter, r *http.Request)
	AssignMentor(w http.ResponseWriter, r *http.Request)
	GetOnboarding(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type onboardingHandlerImpl struct {
	onboardingService onboarding.OnboardingService
}

func NewOnboardingHandler(onboardingService onboarding.OnboardingService) OnboardingHandler {
	return &onboardingHandlerImpl{onboardingService: onboardingService}
}

func (h *onboardingHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req onboarding.StartOnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.onboardingService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding started", result)
}

func (h *onboardingHandlerImpl) CompleteTask(w http.ResponseWriter, r *http.Request) {
	var req onboarding.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "taskID")

	result, err := h.onboardingService.CompleteTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *onboardingHandlerImpl) SkipTask(w http.ResponseWriter, r *http.Request) {
	var req onboarding.SkipTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "taskID")

	result, err := h.onboardingService.SkipTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *onboardingHandlerImpl) AssignMentor(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MentorID string `json:"mentor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if body.MentorID == "" {
		response.BadRequest(w, "Mentor ID is required", nil)
		return
	}

	result, err := h.onboardingService.AssignMentor(r.Context(), chi.URLParam(r, "id"), body.MentorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *onboardingHandlerImpl) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *onboardingHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.GetByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *onboardingHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	results, err := h.onboardingService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *onboardingHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	count, err := h.onboardingService.CountActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	avg, err := h.onboardingService.AverageProgress(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"active_count":     count,
		"average_progress": avg,
	})
}
