package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/repository"
	"kbeauty-insider/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	m := NewAdminMiddleware(db, testutil.NewTestLogger(), repository.NewProfileRepository())

	adminID := uuid.New()
	userID := uuid.New()
	require.NoError(t, db.Create(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}).Error)
	require.NoError(t, db.Create(&entity.Profile{ID: userID, Role: entity.RoleUser}).Error)

	tests := []struct {
		name       string
		callerID   *uuid.UUID
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "no identity in context",
			callerID:   nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "identity without a profile row",
			callerID:   ptr(uuid.New()),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "non-admin profile",
			callerID:   &userID,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin profile",
			callerID:   &adminID,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				role, ok := GetRoleFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, entity.RoleAdmin, role)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/procedures", nil)
			if tt.callerID != nil {
				ctx := context.WithValue(req.Context(), UserIDKey, *tt.callerID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			m.RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}
