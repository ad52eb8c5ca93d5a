package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/delivery/http/middleware"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/response"
	"kbeauty-insider/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	reservationUsecase usecase.ReservationUsecase
	validator          *validator.CustomValidator
}

func NewReservationHandler(reservationUsecase usecase.ReservationUsecase, validator *validator.CustomValidator) *ReservationHandler {
	return &ReservationHandler{
		reservationUsecase: reservationUsecase,
		validator:          validator,
	}
}

// CreateReservation is the public booking form endpoint. A valid bearer
// token links the booking to the caller; no token (or a broken one) makes a
// guest booking.
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Missing required fields")
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	if err := h.reservationUsecase.CreateReservation(r.Context(), userID, &req); err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *ReservationHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	reservations, err := h.reservationUsecase.GetAllReservations(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req dto.UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Invalid status")
		return
	}

	reservation, err := h.reservationUsecase.UpdateReservationStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			response.BadRequest(w, "Invalid status")
		case errors.Is(err, usecase.ErrReservationNotFound):
			response.NotFound(w, "Reservation not found")
		default:
			response.InternalServerError(w)
		}
		return
	}
	response.Data(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := h.reservationUsecase.DeleteReservation(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			response.NotFound(w, "Reservation not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.OK(w)
}
