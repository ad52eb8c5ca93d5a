package converter

import (
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
)

func ReservationToResponse(reservation *entity.Reservation) *dto.ReservationResponse {
	resp := &dto.ReservationResponse{
		ID:            reservation.ID,
		CustomerName:  reservation.CustomerName,
		ContactInfo:   reservation.ContactInfo,
		MessengerType: reservation.MessengerType,
		ProcedureName: reservation.ProcedureName,
		Status:        string(reservation.Status),
		CreatedAt:     reservation.CreatedAt,
	}
	if reservation.UserID != nil {
		resp.UserID = reservation.UserID.String()
	}
	return resp
}

func ReservationsToResponses(reservations []entity.Reservation) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, *ReservationToResponse(&reservations[i]))
	}
	return responses
}
