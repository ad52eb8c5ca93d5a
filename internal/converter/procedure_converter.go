package converter

import (
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/pkg/currency"
)

func ProcedureToResponse(procedure *entity.Procedure) *dto.ProcedureResponse {
	return &dto.ProcedureResponse{
		ID:          procedure.ID,
		Name:        procedure.Name,
		Rank:        procedure.Rank,
		PriceKrw:    procedure.PriceKrw,
		Category:    procedure.Category,
		Description: procedure.Description,
		Clinics:     procedure.Clinics,
		IsHot:       procedure.IsHot,
		CreatedAt:   procedure.CreatedAt,
	}
}

func ProceduresToResponses(procedures []entity.Procedure) []dto.ProcedureResponse {
	responses := make([]dto.ProcedureResponse, 0, len(procedures))
	for i := range procedures {
		responses = append(responses, *ProcedureToResponse(&procedures[i]))
	}
	return responses
}

// ProceduresToPublicResponses additionally fills price_usd from the current
// exchange rate for the marketing pages.
func ProceduresToPublicResponses(procedures []entity.Procedure, rate float64) []dto.ProcedureResponse {
	responses := ProceduresToResponses(procedures)
	for i := range responses {
		responses[i].PriceUsd = currency.KrwToUsd(responses[i].PriceKrw, rate)
	}
	return responses
}
