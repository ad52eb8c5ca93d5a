package handler

import (
	"net/http"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/delivery/http/middleware"
	"kbeauty-insider/pkg/response"
)

// ProfileHandler serves the admin self-check endpoint.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Me reports the identity and role the gate resolved for this request.
// Useful for debugging token and role issues from the dashboard.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing or invalid Bearer token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	response.JSON(w, http.StatusOK, dto.MeResponse{
		OK:     true,
		UserID: userID.String(),
		Role:   role,
	})
}
