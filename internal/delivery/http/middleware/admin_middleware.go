package middleware

import (
	"context"
	"net/http"

	"kbeauty-insider/internal/domain/repository"
	"kbeauty-insider/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminMiddleware is the admin authorization gate. Identity comes from the
// bearer token (AuthMiddleware must run first); authorization is a fresh
// profiles lookup on every request, so revoking a role takes effect
// immediately rather than at token expiry. The role column is the only
// source of truth.
type AdminMiddleware struct {
	db          *gorm.DB
	log         *logrus.Logger
	profileRepo repository.ProfileRepository
}

func NewAdminMiddleware(db *gorm.DB, log *logrus.Logger, profileRepo repository.ProfileRepository) *AdminMiddleware {
	return &AdminMiddleware{
		db:          db,
		log:         log,
		profileRepo: profileRepo,
	}
}

func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Missing or invalid Bearer token")
			return
		}

		profile, err := m.profileRepo.FindByID(m.db.WithContext(r.Context()), userID)
		if err != nil {
			m.log.Warnf("Failed to look up profile %s: %+v", userID, err)
			response.InternalServerError(w)
			return
		}
		if profile == nil || !profile.IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), RoleKey, profile.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
