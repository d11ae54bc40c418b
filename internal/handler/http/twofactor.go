package http

import (
	"encoding/json"
	"net/http"

	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
)

type TwoFactorHandler interface {
	Enable(w http.ResponseWriter, r *http.Request)
	VerifySetup(w http.ResponseWriter, r *http.Request)
	SendCode(w http.ResponseWriter, r *http.Request)
	ValidateLogin(w http.ResponseWriter, r *http.Request)
	Disable(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type twoFactorHandlerImpl struct {
	twoFactorService twofactor.TwoFactorService
}

func NewTwoFactorHandler(twoFactorService twofactor.TwoFactorService) TwoFactorHandler {
	return &twoFactorHandlerImpl{twoFactorService: twoFactorService}
}

func (h *twoFactorHandlerImpl) Enable(w http.ResponseWriter, r *http.Request) {
	var req twofactor.EnableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = getUserIDFromContext(r)

	result, err := h.twoFactorService.Enable(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Two-factor setup started", result)
}

func (h *twoFactorHandlerImpl) VerifySetup(w http.ResponseWriter, r *http.Request) {
	var req twofactor.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = getUserIDFromContext(r)

	result, err := h.twoFactorService.VerifySetup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Two-factor authentication enabled", result)
}

func (h *twoFactorHandlerImpl) SendCode(w http.ResponseWriter, r *http.Request) {
	if err := h.twoFactorService.SendCode(r.Context(), getUserIDFromContext(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Verification code sent", nil)
}

func (h *twoFactorHandlerImpl) ValidateLogin(w http.ResponseWriter, r *http.Request) {
	var req twofactor.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = getUserIDFromContext(r)

	if err := h.twoFactorService.ValidateLogin(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Code accepted", nil)
}

func (h *twoFactorHandlerImpl) Disable(w http.ResponseWriter, r *http.Request) {
	if err := h.twoFactorService.Disable(r.Context(), getUserIDFromContext(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Two-factor authentication disabled", nil)
}

func (h *twoFactorHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.twoFactorService.Status(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
