package usecase

import (
	"context"
	"strconv"
	"time"

	"kbeauty-insider/config"
	"kbeauty-insider/internal/domain/entity"
	"kbeauty-insider/internal/domain/repository"
	"kbeauty-insider/pkg/currency"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	exchangeRateCacheKey = "settings:exchange_rate"
	exchangeRateCacheTTL = 5 * time.Minute
)

// ExchangeRateUsecase resolves the KRW/USD rate used by the marketing pages.
// Resolution order: env override, Redis cache, settings row, hardcoded
// fallback. A lookup failure is never fatal — the fallback keeps prices
// rendering.
type ExchangeRateUsecase interface {
	CurrentRate(ctx context.Context) float64
}

type exchangeRateUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	settingRepo repository.SettingRepository
	cache       *redis.Client
	override    float64
}

// NewExchangeRateUsecase wires the rate resolver. cache may be nil (tests,
// deployments without Redis); caching is then skipped.
func NewExchangeRateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.SettingRepository,
	cache *redis.Client,
	cfg config.ExchangeConfig,
) ExchangeRateUsecase {
	return &exchangeRateUsecase{
		db:          db,
		log:         log,
		settingRepo: settingRepo,
		cache:       cache,
		override:    cfg.RateOverride,
	}
}

func (u *exchangeRateUsecase) CurrentRate(ctx context.Context) float64 {
	if u.override > 0 {
		return u.override
	}

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, exchangeRateCacheKey).Result()
		if err == nil {
			if rate, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil && rate > 0 {
				return rate
			}
		} else if err != redis.Nil {
			u.log.Warnf("Failed to read exchange rate cache: %+v", err)
		}
	}

	rate := u.rateFromSettings(ctx)

	if u.cache != nil {
		value := strconv.FormatFloat(rate, 'f', -1, 64)
		if err := u.cache.Set(ctx, exchangeRateCacheKey, value, exchangeRateCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to write exchange rate cache: %+v", err)
		}
	}

	return rate
}

func (u *exchangeRateUsecase) rateFromSettings(ctx context.Context) float64 {
	setting, err := u.settingRepo.FindByKey(u.db.WithContext(ctx), entity.SettingExchangeRate)
	if err != nil {
		u.log.Warnf("Failed to read exchange rate setting: %+v", err)
		return currency.FallbackRate
	}
	if setting == nil {
		return currency.FallbackRate
	}

	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate <= 0 {
		u.log.Warnf("Exchange rate setting is not a positive number: %q", setting.Value)
		return currency.FallbackRate
	}
	return rate
}
