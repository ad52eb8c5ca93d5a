package usecase

import (
	"context"
	"testing"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/repository"
	"kbeauty-insider/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixedRate stands in for the exchange-rate resolver.
type fixedRate float64

func (f fixedRate) CurrentRate(ctx context.Context) float64 {
	return float64(f)
}

func newProcedureUsecase(t *testing.T, rate float64) (ProcedureUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)
	u := NewProcedureUsecase(db, testutil.NewTestLogger(), repository.NewProcedureRepository(), fixedRate(rate))
	return u, db
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestBulkCreateProcedures(t *testing.T) {
	t.Run("drops rows without a name", func(t *testing.T) {
		u, db := newProcedureUsecase(t, 1400)

		inserted, err := u.BulkCreateProcedures(context.Background(), []dto.CreateProcedureRequest{
			{Name: "Juvelook Volume", Rank: intPtr(1), PriceKrw: 450000, Category: "Skin Booster"},
			{Name: "   "},
			{Name: "Titanium Lifting", PriceKrw: 390000, Category: "Lifting"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		var count int64
		require.NoError(t, db.Model(&entity.Procedure{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("missing rank defaults to bottom", func(t *testing.T) {
		u, db := newProcedureUsecase(t, 1400)

		_, err := u.BulkCreateProcedures(context.Background(), []dto.CreateProcedureRequest{
			{Name: "Rejuran Healer", PriceKrw: 250000},
		})
		require.NoError(t, err)

		var procedure entity.Procedure
		require.NoError(t, db.First(&procedure).Error)
		assert.Equal(t, entity.DefaultRank, procedure.Rank)
	})

	t.Run("no valid items", func(t *testing.T) {
		u, _ := newProcedureUsecase(t, 1400)

		_, err := u.BulkCreateProcedures(context.Background(), []dto.CreateProcedureRequest{{Name: ""}})
		assert.ErrorIs(t, err, ErrNoValidItems)

		_, err = u.BulkCreateProcedures(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoValidItems)
	})
}

func TestGetPublicProcedures(t *testing.T) {
	u, db := newProcedureUsecase(t, 1400)

	require.NoError(t, db.Create(&entity.Procedure{Name: "Ultherapy", Rank: 99, PriceKrw: 1100000}).Error)
	require.NoError(t, db.Create(&entity.Procedure{Name: "Juvelook Volume", Rank: 1, PriceKrw: 450000}).Error)

	procedures, err := u.GetPublicProcedures(context.Background())
	require.NoError(t, err)
	require.Len(t, procedures, 2)

	// Ordered by rank, with USD prices derived from the fixed rate.
	assert.Equal(t, "Juvelook Volume", procedures[0].Name)
	assert.Equal(t, 321, procedures[0].PriceUsd)
	assert.Equal(t, "Ultherapy", procedures[1].Name)
	assert.Equal(t, 786, procedures[1].PriceUsd)
}

func TestUpdateProcedure(t *testing.T) {
	u, db := newProcedureUsecase(t, 1400)
	procedure := &entity.Procedure{Name: "Inmode FX", Rank: 3, PriceKrw: 169000, Category: "Lifting"}
	require.NoError(t, db.Create(procedure).Error)

	t.Run("unknown id", func(t *testing.T) {
		_, err := u.UpdateProcedure(context.Background(), 9999, &dto.UpdateProcedureRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrProcedureNotFound)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		updated, err := u.UpdateProcedure(context.Background(), procedure.ID, &dto.UpdateProcedureRequest{
			PriceKrw: int64Ptr(180000),
			IsHot:    boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Inmode FX", updated.Name)
		assert.Equal(t, int64(180000), updated.PriceKrw)
		assert.Equal(t, 3, updated.Rank)
		assert.True(t, updated.IsHot)
	})
}

func TestDeleteProcedure(t *testing.T) {
	u, db := newProcedureUsecase(t, 1400)
	procedure := &entity.Procedure{Name: "Rejuran Healer"}
	require.NoError(t, db.Create(procedure).Error)

	assert.ErrorIs(t, u.DeleteProcedure(context.Background(), 9999), ErrProcedureNotFound)
	require.NoError(t, u.DeleteProcedure(context.Background(), procedure.ID))
}
