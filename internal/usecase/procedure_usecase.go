package usecase

import (
	"context"
	"errors"
	"strings"

	"kbeauty-insider/internal/converter"
	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProcedureNotFound = errors.New("procedure not found")
	ErrNoValidItems      = errors.New("no valid items")
)

type ProcedureUsecase interface {
	GetAllProcedures(ctx context.Context) ([]dto.ProcedureResponse, error)
	GetPublicProcedures(ctx context.Context) ([]dto.ProcedureResponse, error)
	CreateProcedure(ctx context.Context, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error)
	BulkCreateProcedures(ctx context.Context, items []dto.CreateProcedureRequest) (int, error)
	UpdateProcedure(ctx context.Context, id int64, req *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error)
	DeleteProcedure(ctx context.Context, id int64) error
}

type procedureUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	procedureRepo repository.ProcedureRepository
	exchangeRate  ExchangeRateUsecase
}

func NewProcedureUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	procedureRepo repository.ProcedureRepository,
	exchangeRate ExchangeRateUsecase,
) ProcedureUsecase {
	return &procedureUsecase{
		db:            db,
		log:           log,
		procedureRepo: procedureRepo,
		exchangeRate:  exchangeRate,
	}
}

func (u *procedureUsecase) GetAllProcedures(ctx context.Context) ([]dto.ProcedureResponse, error) {
	procedures, err := u.procedureRepo.FindAllByRank(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find procedures: %+v", err)
		return nil, err
	}
	return converter.ProceduresToResponses(procedures), nil
}

// GetPublicProcedures is the marketing-page listing: same ordering as the
// admin listing, with price_usd derived from the current exchange rate.
func (u *procedureUsecase) GetPublicProcedures(ctx context.Context) ([]dto.ProcedureResponse, error) {
	procedures, err := u.procedureRepo.FindAllByRank(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find procedures: %+v", err)
		return nil, err
	}

	rate := u.exchangeRate.CurrentRate(ctx)
	return converter.ProceduresToPublicResponses(procedures, rate), nil
}

func (u *procedureUsecase) CreateProcedure(ctx context.Context, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error) {
	procedure := procedureFromRequest(req)
	if procedure == nil {
		return nil, ErrNoValidItems
	}

	if err := u.procedureRepo.Create(u.db.WithContext(ctx), procedure); err != nil {
		u.log.Warnf("Failed to create procedure: %+v", err)
		return nil, err
	}
	return converter.ProcedureToResponse(procedure), nil
}

// BulkCreateProcedures inserts the rows of an Excel import. Rows without a
// name are dropped rather than failing the whole batch; repeated imports
// produce duplicate rows (known limitation, the dedup policy was never
// settled).
func (u *procedureUsecase) BulkCreateProcedures(ctx context.Context, items []dto.CreateProcedureRequest) (int, error) {
	procedures := make([]entity.Procedure, 0, len(items))
	for i := range items {
		if procedure := procedureFromRequest(&items[i]); procedure != nil {
			procedures = append(procedures, *procedure)
		}
	}
	if len(procedures) == 0 {
		return 0, ErrNoValidItems
	}

	if err := u.procedureRepo.CreateBatch(u.db.WithContext(ctx), procedures); err != nil {
		u.log.Warnf("Failed to bulk create procedures: %+v", err)
		return 0, err
	}
	return len(procedures), nil
}

func (u *procedureUsecase) UpdateProcedure(ctx context.Context, id int64, req *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	procedure, err := u.procedureRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find procedure %d: %+v", id, err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		procedure.Name = strings.TrimSpace(*req.Name)
	}
	if req.Rank != nil {
		procedure.Rank = *req.Rank
	}
	if req.PriceKrw != nil {
		procedure.PriceKrw = *req.PriceKrw
	}
	if req.Category != nil {
		procedure.Category = *req.Category
	}
	if req.Description != nil {
		procedure.Description = *req.Description
	}
	if req.Clinics != nil {
		procedure.Clinics = entity.StringList(req.Clinics)
	}
	if req.IsHot != nil {
		procedure.IsHot = *req.IsHot
	}

	if err := u.procedureRepo.Update(tx, procedure); err != nil {
		u.log.Warnf("Failed to update procedure %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProcedureToResponse(procedure), nil
}

func (u *procedureUsecase) DeleteProcedure(ctx context.Context, id int64) error {
	affectedRows, err := u.procedureRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete procedure %d: %+v", id, err)
		return err
	}
	if affectedRows == 0 {
		return ErrProcedureNotFound
	}
	return nil
}

// procedureFromRequest normalizes one import row; returns nil when the row
// has no usable name.
func procedureFromRequest(req *dto.CreateProcedureRequest) *entity.Procedure {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil
	}

	rank := entity.DefaultRank
	if req.Rank != nil {
		rank = *req.Rank
	}

	return &entity.Procedure{
		Name:        name,
		Rank:        rank,
		PriceKrw:    req.PriceKrw,
		Category:    req.Category,
		Description: req.Description,
		Clinics:     entity.StringList(req.Clinics),
		IsHot:       req.IsHot,
	}
}
