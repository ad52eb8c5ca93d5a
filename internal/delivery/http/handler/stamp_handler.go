package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/delivery/http/middleware"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/response"
	"kbeauty-insider/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StampHandler struct {
	stampUsecase usecase.StampUsecase
	validator    *validator.CustomValidator
}

func NewStampHandler(stampUsecase usecase.StampUsecase, validator *validator.CustomValidator) *StampHandler {
	return &StampHandler{
		stampUsecase: stampUsecase,
		validator:    validator,
	}
}

func (h *StampHandler) GetAllStamps(w http.ResponseWriter, r *http.Request) {
	stamps, err := h.stampUsecase.GetAllStamps(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, stamps)
}

func (h *StampHandler) IssueStamp(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing or invalid Bearer token")
		return
	}

	var req dto.IssueStampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid reservation_id")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Invalid reservation_id")
		return
	}

	stamp, err := h.stampUsecase.Issue(r.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStampReservationNotFound):
			response.NotFound(w, "Reservation not found")
		case errors.Is(err, usecase.ErrReservationNotCompleted):
			response.BadRequest(w, "Only Completed can issue stamp")
		case errors.Is(err, usecase.ErrGuestReservation):
			response.BadRequest(w, "Guest reservation: no linked user")
		case errors.Is(err, usecase.ErrStampNotEligible):
			response.BadRequest(w, "Stamp not eligible")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.Data(w, http.StatusCreated, stamp)
}

func (h *StampHandler) DeleteStamp(w http.ResponseWriter, r *http.Request) {
	stampID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	if err := h.stampUsecase.DeleteStamp(r.Context(), stampID); err != nil {
		if errors.Is(err, usecase.ErrStampNotFound) {
			response.NotFound(w, "Stamp not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.OK(w)
}
