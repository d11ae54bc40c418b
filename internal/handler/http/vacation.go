package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/vacation"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type VacationHandler interface {
	CreateVacation(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetVacation(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{vacationService: vacationService}
}

func (h *vacationHandlerImpl) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created", result)
}

func (h *vacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.vacationService.Approve(r.Context(), chi.URLParam(r, "id"), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.vacationService.Reject(r.Context(), chi.URLParam(r, "id"), getUserIDFromContext(r), body.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := h.vacationService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) GetVacation(w http.ResponseWriter, r *http.Request) {
	result, err := h.vacationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	results, err := h.vacationService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *vacationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	results, err := h.vacationService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}
