package converter

import (
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
)

func StampToResponse(stamp *entity.Stamp) *dto.StampResponse {
	resp := &dto.StampResponse{
		ID:            stamp.ID.String(),
		UserID:        stamp.UserID.String(),
		ReservationID: stamp.ReservationID,
		IssuedAt:      stamp.IssuedAt,
	}
	if stamp.IssuedBy != nil {
		resp.IssuedBy = stamp.IssuedBy.String()
	}
	return resp
}

func StampsToResponses(stamps []entity.Stamp) []dto.StampResponse {
	responses := make([]dto.StampResponse, 0, len(stamps))
	for i := range stamps {
		responses = append(responses, *StampToResponse(&stamps[i]))
	}
	return responses
}
