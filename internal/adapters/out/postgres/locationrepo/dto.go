// Package locationrepo persists the geocode cache. The raw address string is
// the primary key; rows are inserted once and never updated, which gives the
// cache its first-writer-wins behavior under concurrent resolution.
package locationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
)

// LocationDTO represents one geocode cache row. Coordinates are nullable:
// a row with resolved = false records an address the geocoder affirmatively
// could not find.
type LocationDTO struct {
	Address   string   `gorm:"type:varchar(512);primaryKey"`
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
	Resolved  bool     `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for location cache entries.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location aggregate to its database representation.
func fromDomain(aggregate *location.Location) LocationDTO {
	dto := LocationDTO{
		Address:   aggregate.Address(),
		Resolved:  aggregate.Resolved(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	if point := aggregate.Point(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain converts a database DTO to a location aggregate.
func toDomain(dto LocationDTO) (*location.Location, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	return location.RestoreLocation(dto.Address, point, dto.Resolved, dto.UpdatedAt)
}
