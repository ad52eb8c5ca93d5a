package usecase

import (
	"context"
	"testing"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/repository"
	"kbeauty-insider/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStampUsecase(t *testing.T) (StampUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)
	u := NewStampUsecase(db, testutil.NewTestLogger(), repository.NewStampRepository(), repository.NewReservationRepository())
	return u, db
}

func seedReservation(t *testing.T, db *gorm.DB, status entity.ReservationStatus, userID *uuid.UUID) *entity.Reservation {
	t.Helper()
	reservation := &entity.Reservation{
		UserID:        userID,
		CustomerName:  "Mina Kim",
		ContactInfo:   "@mina",
		MessengerType: "telegram",
		ProcedureName: "Rejuran Healer",
		Status:        status,
	}
	require.NoError(t, db.Create(reservation).Error)
	return reservation
}

func TestIssueStamp(t *testing.T) {
	adminID := uuid.New()

	t.Run("reservation not found", func(t *testing.T) {
		u, db := newStampUsecase(t)

		_, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: 42})
		assert.ErrorIs(t, err, ErrStampReservationNotFound)
		assertStampCount(t, db, 0)
	})

	t.Run("reservation not completed", func(t *testing.T) {
		u, db := newStampUsecase(t)
		userID := uuid.New()
		reservation := seedReservation(t, db, entity.ReservationStatusPending, &userID)

		_, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: reservation.ID})
		assert.ErrorIs(t, err, ErrReservationNotCompleted)
		assertStampCount(t, db, 0)
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		u, db := newStampUsecase(t)
		userID := uuid.New()
		reservation := seedReservation(t, db, entity.ReservationStatusCancelled, &userID)

		_, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: reservation.ID})
		assert.ErrorIs(t, err, ErrReservationNotCompleted)
		assertStampCount(t, db, 0)
	})

	t.Run("guest reservation", func(t *testing.T) {
		u, db := newStampUsecase(t)
		reservation := seedReservation(t, db, entity.ReservationStatusCompleted, nil)

		_, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: reservation.ID})
		assert.ErrorIs(t, err, ErrGuestReservation)
		assertStampCount(t, db, 0)
	})

	t.Run("completed reservation with linked user", func(t *testing.T) {
		u, db := newStampUsecase(t)
		userID := uuid.New()
		reservation := seedReservation(t, db, entity.ReservationStatusCompleted, &userID)

		stamp, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: reservation.ID})
		require.NoError(t, err)

		// user_id comes from the reservation, issued_by from the admin.
		assert.Equal(t, userID.String(), stamp.UserID)
		assert.Equal(t, reservation.ID, stamp.ReservationID)
		assert.Equal(t, adminID.String(), stamp.IssuedBy)
		assertStampCount(t, db, 1)
	})
}

func TestGetAllStamps(t *testing.T) {
	u, db := newStampUsecase(t)
	userID := uuid.New()
	reservation := seedReservation(t, db, entity.ReservationStatusCompleted, &userID)

	adminID := uuid.New()
	first, err := u.Issue(context.Background(), adminID, &dto.IssueStampRequest{ReservationID: reservation.ID})
	require.NoError(t, err)

	stamps, err := u.GetAllStamps(context.Background())
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	assert.Equal(t, first.ID, stamps[0].ID)
}

func TestDeleteStamp(t *testing.T) {
	u, db := newStampUsecase(t)
	userID := uuid.New()
	reservation := seedReservation(t, db, entity.ReservationStatusCompleted, &userID)

	stamp, err := u.Issue(context.Background(), uuid.New(), &dto.IssueStampRequest{ReservationID: reservation.ID})
	require.NoError(t, err)

	t.Run("unknown stamp", func(t *testing.T) {
		assert.ErrorIs(t, u.DeleteStamp(context.Background(), uuid.New()), ErrStampNotFound)
	})

	t.Run("existing stamp", func(t *testing.T) {
		stampID, err := uuid.Parse(stamp.ID)
		require.NoError(t, err)
		require.NoError(t, u.DeleteStamp(context.Background(), stampID))
		assertStampCount(t, db, 0)
	})
}

func assertStampCount(t *testing.T, db *gorm.DB, want int64) {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Stamp{}).Count(&count).Error)
	assert.Equal(t, want, count)
}
