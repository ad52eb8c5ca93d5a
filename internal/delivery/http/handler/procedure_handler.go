package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/response"
	"kbeauty-insider/pkg/validator"

	"github.com/gorilla/mux"
)

type ProcedureHandler struct {
	procedureUsecase usecase.ProcedureUsecase
	validator        *validator.CustomValidator
}

func NewProcedureHandler(procedureUsecase usecase.ProcedureUsecase, validator *validator.CustomValidator) *ProcedureHandler {
	return &ProcedureHandler{
		procedureUsecase: procedureUsecase,
		validator:        validator,
	}
}

func (h *ProcedureHandler) GetAllProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.procedureUsecase.GetAllProcedures(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, procedures)
}

// GetPublicProcedures serves the marketing catalog with USD prices filled in.
func (h *ProcedureHandler) GetPublicProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.procedureUsecase.GetPublicProcedures(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, procedures)
}

// CreateProcedures accepts either {"items":[...]} (Excel import) or a single
// procedure object.
func (h *ProcedureHandler) CreateProcedures(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	var bulk dto.BulkProcedureRequest
	if err := json.Unmarshal(body, &bulk); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if bulk.Items != nil {
		inserted, err := h.procedureUsecase.BulkCreateProcedures(r.Context(), bulk.Items)
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

	var req dto.CreateProcedureRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Name is required")
		return
	}

	procedure, err := h.procedureUsecase.CreateProcedure(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrNoValidItems) {
			response.BadRequest(w, "Name is required")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusCreated, procedure)
}

func (h *ProcedureHandler) UpdateProcedure(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req dto.UpdateProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	procedure, err := h.procedureUsecase.UpdateProcedure(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProcedureNotFound) {
			response.NotFound(w, "Procedure not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.Data(w, http.StatusOK, procedure)
}

func (h *ProcedureHandler) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNumericID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := h.procedureUsecase.DeleteProcedure(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProcedureNotFound) {
			response.NotFound(w, "Procedure not found")
			return
		}
		response.InternalServerError(w)
		return
	}
	response.OK(w)
}

// parseNumericID rejects non-numeric id segments before any storage work
// happens. Writes the 400 itself so callers can just return.
func parseNumericID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return id, true
}
