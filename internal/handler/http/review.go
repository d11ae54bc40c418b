package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joabe-nascimento/talents-flow/internal/domain/review"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	UpdateReview(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	AverageRating(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{reviewService: reviewService}
}

func (h *reviewHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req review.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review created", result)
}

func (h *reviewHandlerImpl) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req review.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.reviewService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reviewHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reviewHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.Acknowledge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reviewHandlerImpl) GetReview(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reviewHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	results, err := h.reviewService.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *reviewHandlerImpl) AverageRating(w http.ResponseWriter, r *http.Request) {
	avg, err := h.reviewService.AverageRating(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]float64{"average_rating": avg})
}
