package converter

import (
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
)

func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	return &dto.ClinicResponse{
		ID:           clinic.ID,
		Name:         clinic.Name,
		Category:     clinic.Category,
		District:     clinic.District,
		Location:     clinic.Location,
		Rating:       clinic.Rating,
		Reviews:      clinic.Reviews,
		HeroImageURL: clinic.HeroImageURL,
		PriceFromUsd: clinic.PriceFromUsd,
		IsFeatured:   clinic.IsFeatured,
		IsFreepass:   clinic.IsFreepass,
		SortRank:     clinic.SortRank,
		CreatedAt:    clinic.CreatedAt,
	}
}

func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, 0, len(clinics))
	for i := range clinics {
		responses = append(responses, *ClinicToResponse(&clinics[i]))
	}
	return responses
}
