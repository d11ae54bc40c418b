package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/timerecord"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type TimeRecordHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	LunchOut(w http.ResponseWriter, r *http.Request)
	LunchIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

func (h *timeRecordHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timerecord.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeRecordService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock-in registered", result)
}

func (h *timeRecordHandlerImpl) LunchOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.LunchOut(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) LunchIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.LunchIn(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.ClockOut(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApprovedBy string `json:"approved_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeRecordService.Approve(r.Context(), chi.URLParam(r, "id"), body.ApprovedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Justification string `json:"justification"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeRecordService.Reject(r.Context(), chi.URLParam(r, "id"), body.Justification)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeRecordService.GetToday(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be a number", nil)
		return
	}

	results, err := h.timeRecordService.ListByEmployeeAndMonth(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *timeRecordHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
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

	employeeID := chi.URLParam(r, "employeeID")
	worked, err := h.timeRecordService.TotalWorkedMinutes(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	overtime, err := h.timeRecordService.TotalOvertimeMinutes(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{
		"worked_minutes":   worked,
		"overtime_minutes": overtime,
	})
}
