package usecase

import (
	"context"
	"errors"

	"kbeauty-insider/internal/converter"
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStampReservationNotFound = errors.New("reservation not found")
	ErrReservationNotCompleted  = errors.New("only Completed can issue stamp")
	ErrGuestReservation         = errors.New("guest reservation: no linked user")
	ErrStampNotEligible         = errors.New("stamp not eligible")
	ErrStampNotFound            = errors.New("stamp not found")
)

type StampUsecase interface {
	Issue(ctx context.Context, adminID uuid.UUID, req *dto.IssueStampRequest) (*dto.StampResponse, error)
	GetAllStamps(ctx context.Context) ([]dto.StampResponse, error)
	DeleteStamp(ctx context.Context, stampID uuid.UUID) error
}

type stampUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	stampRepo       repository.StampRepository
	reservationRepo repository.ReservationRepository
}

func NewStampUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	stampRepo repository.StampRepository,
	reservationRepo repository.ReservationRepository,
) StampUsecase {
	return &stampUsecase{
		db:              db,
		log:             log,
		stampRepo:       stampRepo,
		reservationRepo: reservationRepo,
	}
}

// Issue creates a stamp for a completed reservation. The eligibility checks
// here only exist to fail early with a precise error; the
// stamps_completed_only trigger re-validates the same conditions on insert
// and is the authoritative enforcement point. A trigger rejection must still
// surface as a client error, never as a swallowed 500.
func (u *stampUsecase) Issue(ctx context.Context, adminID uuid.UUID, req *dto.IssueStampRequest) (*dto.StampResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reservation, err := u.reservationRepo.FindByID(tx, req.ReservationID)
	if err != nil {
		u.log.Warnf("Failed to find reservation %d: %+v", req.ReservationID, err)
		return nil, err
	}
	if reservation == nil {
		return nil, ErrStampReservationNotFound
	}
	if !reservation.IsCompleted() {
		return nil, ErrReservationNotCompleted
	}
	if reservation.IsGuest() {
		return nil, ErrGuestReservation
	}

	// user_id always comes from the reservation row, never from the client.
	stamp := &entity.Stamp{
		UserID:        *reservation.UserID,
		ReservationID: reservation.ID,
		IssuedBy:      &adminID,
	}

	if err := u.stampRepo.Create(tx, stamp); err != nil {
		u.log.Warnf("Failed to create stamp for reservation %d: %+v", req.ReservationID, err)
		if isRaiseException(err) {
			// Trigger fired: the reservation changed between our read and the
			// insert, or the insert bypassed the pre-check path.
			return nil, ErrStampNotEligible
		}
		if isForeignKeyError(err, "reservation") {
			return nil, ErrStampReservationNotFound
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		if isRaiseException(err) {
			return nil, ErrStampNotEligible
		}
		return nil, err
	}

	return converter.StampToResponse(stamp), nil
}

func (u *stampUsecase) GetAllStamps(ctx context.Context) ([]dto.StampResponse, error) {
	stamps, err := u.stampRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find stamps: %+v", err)
		return nil, err
	}
	return converter.StampsToResponses(stamps), nil
}

func (u *stampUsecase) DeleteStamp(ctx context.Context, stampID uuid.UUID) error {
	affectedRows, err := u.stampRepo.Delete(u.db.WithContext(ctx), stampID)
	if err != nil {
		u.log.Warnf("Failed to delete stamp %s: %+v", stampID, err)
		return err
	}
	if affectedRows == 0 {
		return ErrStampNotFound
	}
	return nil
}
