package locationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
// The cache is append only; there is no Update and no Delete.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add stores a cache entry unless one already exists for the address.
// ON CONFLICT DO NOTHING makes the insert race-safe: whichever writer gets
// there first wins and later writers silently keep the existing row.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

// Get retrieves the cache entry for a single address.
func (r *GormLocationRepository) Get(ctx context.Context, address string) (*location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", address)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAddresses retrieves the cache entries for a batch of addresses in one
// round trip. Addresses without an entry are absent from the result.
func (r *GormLocationRepository) GetByAddresses(
	ctx context.Context,
	addresses []string,
) (map[string]*location.Location, error) {
	if len(addresses) == 0 {
		return map[string]*location.Location{}, nil
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("address IN ?", addresses).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make(map[string]*location.Location, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries[entry.Address()] = entry
	}

	return entries, nil
}
