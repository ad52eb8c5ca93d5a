package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/repository"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/response"
	"kbeauty-insider/pkg/validator"

	"github.com/gorilla/mux"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
	}
}

func (h *ClinicHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetAllClinics(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, clinics)
}

// GetPublicClinics serves the clinic directory. featured=1 and freepass=1
// narrow the listing.
func (h *ClinicHandler) GetPublicClinics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.ClinicFilter{
		Featured: query.Get("featured") == "1",
		Freepass: query.Get("freepass") == "1",
	}

	clinics, err := h.clinicUsecase.GetPublicClinics(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, clinics)
}

func (h *ClinicHandler) CreateClinics(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	var bulk dto.BulkClinicRequest
	if err := json.Unmarshal(body, &bulk); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if bulk.Items != nil {
		inserted, err := h.clinicUsecase.BulkCreateClinics(r.Context(), bulk.Items)
		if err != nil {
			if errors.Is(err, usecase.ErrNoValidItems) {
				response.BadRequest(w, "No valid items")
				return
			}
			response.InternalServerError(w)
			return
		}
		response.OKInserted(w, inserted)
		return
	}

	var req dto.CreateClinicRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Name is required")
		return
	}

	clinic, err := h.clinicUsecase.CreateClinic(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrNoValidItems) {
			response.BadRequest(w, "Name is required")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusCreated, clinic)
}

func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req dto.UpdateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	clinic, err := h.clinicUsecase.UpdateClinic(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrClinicNotFound) {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, clinic)
}

func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := h.clinicUsecase.DeleteClinic(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrClinicNotFound) {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.OK(w)
}
