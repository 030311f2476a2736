package location_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolvedLocation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(55.7539, 37.6208)
		require.NoError(t, err)

		l, err := location.NewResolvedLocation("Moscow, Arbat 1", point)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, "Moscow, Arbat 1", l.Address())
		assert.True(t, l.Resolved())
		require.NotNil(t, l.Point())
		equal, err := l.Point().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.WithinDuration(t, time.Now().UTC(), l.UpdatedAt(), time.Minute)
	})

	t.Run("empty address rejected", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(55.7539, 37.6208)
		require.NoError(t, err)

		_, err = location.NewResolvedLocation("", point)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value point rejected", func(t *testing.T) {
		var point kernel.GeoPoint

		_, err := location.NewResolvedLocation("Moscow, Arbat 1", point)

		require.Error(t, err)
	})
}

func TestNewUnresolvableLocation(t *testing.T) {
	l, err := location.NewUnresolvableLocation("Nowhere, Nonexistent 0")

	require.NoError(t, err)
	require.NoError(t, l.Validate())
	assert.False(t, l.Resolved())
	assert.Nil(t, l.Point())
}

func TestRestoreLocation(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("resolved entry", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(55.7539, 37.6208)
		require.NoError(t, err)

		l, err := location.RestoreLocation("Moscow, Arbat 1", &point, true, updatedAt)

		require.NoError(t, err)
		assert.True(t, l.Resolved())
		assert.Equal(t, updatedAt, l.UpdatedAt())
	})

	t.Run("unresolvable entry", func(t *testing.T) {
		l, err := location.RestoreLocation("Nowhere", nil, false, updatedAt)

		require.NoError(t, err)
		assert.False(t, l.Resolved())
		assert.Nil(t, l.Point())
	})

	t.Run("resolved entry without point rejected", func(t *testing.T) {
		_, err := location.RestoreLocation("Moscow, Arbat 1", nil, true, updatedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unresolvable entry with point rejected", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(55.7539, 37.6208)
		require.NoError(t, err)

		_, err = location.RestoreLocation("Nowhere", &point, false, updatedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLocation_Validate_NotConstructed(t *testing.T) {
	var l location.Location

	err := l.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, location.ErrLocationIsNotConstructed)
}
