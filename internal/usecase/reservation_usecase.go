package usecase

import (
	"context"
	"errors"
	"strings"

	"kbeauty-insider/internal/converter"
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid status")
)

const (
	defaultReservationLimit = 50
	maxReservationLimit     = 200
)

type ReservationUsecase interface {
	CreateReservation(ctx context.Context, userID *uuid.UUID, req *dto.CreateReservationRequest) error
	GetAllReservations(ctx context.Context, limit, offset int) ([]dto.ReservationResponse, error)
	UpdateReservationStatus(ctx context.Context, id int64, status string) (*dto.ReservationResponse, error)
	DeleteReservation(ctx context.Context, id int64) error
}

type reservationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reservationRepo repository.ReservationRepository
}

func NewReservationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reservationRepo repository.ReservationRepository,
) ReservationUsecase {
	return &reservationUsecase{
		db:              db,
		log:             log,
		reservationRepo: reservationRepo,
	}
}

// CreateReservation records a public booking request. userID is nil for
// guests; authenticated callers get their identity attached so the booking
// can later earn a stamp.
func (u *reservationUsecase) CreateReservation(ctx context.Context, userID *uuid.UUID, req *dto.CreateReservationRequest) error {
	reservation := &entity.Reservation{
		UserID:        userID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		ContactInfo:   strings.TrimSpace(req.ContactInfo),
		MessengerType: strings.TrimSpace(req.MessengerType),
		ProcedureName: strings.TrimSpace(req.ProcedureName),
		Status:        entity.ReservationStatusPending,
	}

	if err := u.reservationRepo.Create(u.db.WithContext(ctx), reservation); err != nil {
		u.log.Warnf("Failed to create reservation: %+v", err)
		return err
	}
	return nil
}

func (u *reservationUsecase) GetAllReservations(ctx context.Context, limit, offset int) ([]dto.ReservationResponse, error) {
	if limit <= 0 {
		limit = defaultReservationLimit
	}
	if limit > maxReservationLimit {
		limit = maxReservationLimit
	}
	if offset < 0 {
		offset = 0
	}

	reservations, err := u.reservationRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find reservations: %+v", err)
		return nil, err
	}
	return converter.ReservationsToResponses(reservations), nil
}

// UpdateReservationStatus rejects unknown status values before touching the
// row.
func (u *reservationUsecase) UpdateReservationStatus(ctx context.Context, id int64, status string) (*dto.ReservationResponse, error) {
	newStatus := entity.ReservationStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	reservation, err := u.reservationRepo.UpdateStatus(u.db.WithContext(ctx), id, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update reservation %d status: %+v", id, err)
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	return converter.ReservationToResponse(reservation), nil
}

func (u *reservationUsecase) DeleteReservation(ctx context.Context, id int64) error {
	affectedRows, err := u.reservationRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete reservation %d: %+v", id, err)
		return err
	}
	if affectedRows == 0 {
		return ErrReservationNotFound
	}
	return nil
}
