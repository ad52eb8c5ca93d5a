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

var ErrClinicNotFound = errors.New("clinic not found")

type ClinicUsecase interface {
	GetAllClinics(ctx context.Context) ([]dto.ClinicResponse, error)
	GetPublicClinics(ctx context.Context, filter repository.ClinicFilter) ([]dto.ClinicResponse, error)
	CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	BulkCreateClinics(ctx context.Context, items []dto.CreateClinicRequest) (int, error)
	UpdateClinic(ctx context.Context, id int64, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	DeleteClinic(ctx context.Context, id int64) error
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
}

func NewClinicUsecase(db *gorm.DB, log *logrus.Logger, clinicRepo repository.ClinicRepository) ClinicUsecase {
	return &clinicUsecase{
		db:         db,
		log:        log,
		clinicRepo: clinicRepo,
	}
}

func (u *clinicUsecase) GetAllClinics(ctx context.Context) ([]dto.ClinicResponse, error) {
	clinics, err := u.clinicRepo.FindAllBySortRank(u.db.WithContext(ctx), repository.ClinicFilter{})
	if err != nil {
		u.log.Warnf("Failed to find clinics: %+v", err)
		return nil, err
	}
	return converter.ClinicsToResponses(clinics), nil
}

func (u *clinicUsecase) GetPublicClinics(ctx context.Context, filter repository.ClinicFilter) ([]dto.ClinicResponse, error) {
	clinics, err := u.clinicRepo.FindAllBySortRank(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find clinics: %+v", err)
		return nil, err
	}
	return converter.ClinicsToResponses(clinics), nil
}

func (u *clinicUsecase) CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	clinic := clinicFromRequest(req)
	if clinic == nil {
		return nil, ErrNoValidItems
	}

	if err := u.clinicRepo.Create(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) BulkCreateClinics(ctx context.Context, items []dto.CreateClinicRequest) (int, error) {
	clinics := make([]entity.Clinic, 0, len(items))
	for i := range items {
		if clinic := clinicFromRequest(&items[i]); clinic != nil {
			clinics = append(clinics, *clinic)
		}
	}
	if len(clinics) == 0 {
		return 0, ErrNoValidItems
	}

	if err := u.clinicRepo.CreateBatch(u.db.WithContext(ctx), clinics); err != nil {
		u.log.Warnf("Failed to bulk create clinics: %+v", err)
		return 0, err
	}
	return len(clinics), nil
}

func (u *clinicUsecase) UpdateClinic(ctx context.Context, id int64, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		clinic.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		clinic.Category = *req.Category
	}
	if req.District != nil {
		clinic.District = *req.District
	}
	if req.Location != nil {
		clinic.Location = *req.Location
	}
	if req.Rating != nil {
		clinic.Rating = *req.Rating
	}
	if req.Reviews != nil {
		clinic.Reviews = *req.Reviews
	}
	if req.HeroImageURL != nil {
		clinic.HeroImageURL = *req.HeroImageURL
	}
	if req.PriceFromUsd != nil {
		clinic.PriceFromUsd = *req.PriceFromUsd
	}
	if req.IsFeatured != nil {
		clinic.IsFeatured = *req.IsFeatured
	}
	if req.IsFreepass != nil {
		clinic.IsFreepass = *req.IsFreepass
	}
	if req.SortRank != nil {
		clinic.SortRank = *req.SortRank
	}

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) DeleteClinic(ctx context.Context, id int64) error {
	affectedRows, err := u.clinicRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete clinic %d: %+v", id, err)
		return err
	}
	if affectedRows == 0 {
		return ErrClinicNotFound
	}
	return nil
}

func clinicFromRequest(req *dto.CreateClinicRequest) *entity.Clinic {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil
	}

	sortRank := entity.DefaultRank
	if req.SortRank != nil {
		sortRank = *req.SortRank
	}

	return &entity.Clinic{
		Name:         name,
		Category:     req.Category,
		District:     req.District,
		Location:     req.Location,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		HeroImageURL: req.HeroImageURL,
		PriceFromUsd: req.PriceFromUsd,
		IsFeatured:   req.IsFeatured,
		IsFreepass:   req.IsFreepass,
		SortRank:     sortRank,
	}
}
