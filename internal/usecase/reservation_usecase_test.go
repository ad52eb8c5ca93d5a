package usecase

import (
	"context"
	"fmt"
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

func newReservationUsecase(t *testing.T) (ReservationUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)
	u := NewReservationUsecase(db, testutil.NewTestLogger(), repository.NewReservationRepository())
	return u, db
}

func TestCreateReservation(t *testing.T) {
	t.Run("guest booking trims fields", func(t *testing.T) {
		u, db := newReservationUsecase(t)

		err := u.CreateReservation(context.Background(), nil, &dto.CreateReservationRequest{
			CustomerName:  "  Mina Kim  ",
			ContactInfo:   " @mina ",
			MessengerType: "telegram",
			ProcedureName: " Rejuran Healer ",
		})
		require.NoError(t, err)

		var reservation entity.Reservation
		require.NoError(t, db.First(&reservation).Error)
		assert.Equal(t, "Mina Kim", reservation.CustomerName)
		assert.Equal(t, "@mina", reservation.ContactInfo)
		assert.Equal(t, "Rejuran Healer", reservation.ProcedureName)
		assert.Equal(t, entity.ReservationStatusPending, reservation.Status)
		assert.Nil(t, reservation.UserID)
	})

	t.Run("authenticated booking links the user", func(t *testing.T) {
		u, db := newReservationUsecase(t)
		userID := uuid.New()

		err := u.CreateReservation(context.Background(), &userID, &dto.CreateReservationRequest{
			CustomerName:  "Mina Kim",
			ContactInfo:   "@mina",
			MessengerType: "kakao",
			ProcedureName: "Titanium Lifting",
		})
		require.NoError(t, err)

		var reservation entity.Reservation
		require.NoError(t, db.First(&reservation).Error)
		require.NotNil(t, reservation.UserID)
		assert.Equal(t, userID, *reservation.UserID)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	u, db := newReservationUsecase(t)
	reservation := seedReservation(t, db, entity.ReservationStatusPending, nil)

	t.Run("invalid status leaves the row untouched", func(t *testing.T) {
		for _, status := range []string{"Done", "pending", "COMPLETED", ""} {
			_, err := u.UpdateReservationStatus(context.Background(), reservation.ID, status)
			assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
		}

		var current entity.Reservation
		require.NoError(t, db.First(&current, reservation.ID).Error)
		assert.Equal(t, entity.ReservationStatusPending, current.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := u.UpdateReservationStatus(context.Background(), 9999, "Completed")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("valid status", func(t *testing.T) {
		updated, err := u.UpdateReservationStatus(context.Background(), reservation.ID, "Completed")
		require.NoError(t, err)
		assert.Equal(t, "Completed", updated.Status)

		var current entity.Reservation
		require.NoError(t, db.First(&current, reservation.ID).Error)
		assert.Equal(t, entity.ReservationStatusCompleted, current.Status)
	})
}

func TestGetAllReservations(t *testing.T) {
	u, db := newReservationUsecase(t)
	for i := 0; i < 60; i++ {
		reservation := &entity.Reservation{
			CustomerName:  fmt.Sprintf("Customer %d", i),
			ContactInfo:   "@contact",
			MessengerType: "line",
			ProcedureName: "Inmode FX",
			Status:        entity.ReservationStatusPending,
		}
		require.NoError(t, db.Create(reservation).Error)
	}

	t.Run("default limit", func(t *testing.T) {
		reservations, err := u.GetAllReservations(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Len(t, reservations, 50)
	})

	t.Run("explicit limit and offset", func(t *testing.T) {
		reservations, err := u.GetAllReservations(context.Background(), 10, 55)
		require.NoError(t, err)
		assert.Len(t, reservations, 5)
	})

	t.Run("limit capped", func(t *testing.T) {
		reservations, err := u.GetAllReservations(context.Background(), 10000, 0)
		require.NoError(t, err)
		assert.Len(t, reservations, 60)
	})
}

func TestDeleteReservation(t *testing.T) {
	u, db := newReservationUsecase(t)
	reservation := seedReservation(t, db, entity.ReservationStatusPending, nil)

	assert.ErrorIs(t, u.DeleteReservation(context.Background(), 9999), ErrReservationNotFound)
	require.NoError(t, u.DeleteReservation(context.Background(), reservation.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Reservation{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
