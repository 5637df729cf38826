package geo_test

import (
	"testing"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	t.Run("valid_region", func(t *testing.T) {
		id := kernel.NewUUID()

		region, err := geo.NewRegion(id, "Fergana")

		require.NoError(t, err)
		assert.True(t, region.ID().IsEqual(id))
		assert.Equal(t, "Fergana", region.Name())
		require.NoError(t, region.Validate())
	})

	t.Run("name_is_trimmed", func(t *testing.T) {
		region, err := geo.NewRegion(kernel.NewUUID(), "  Tashkent  ")

		require.NoError(t, err)
		assert.Equal(t, "Tashkent", region.Name())
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := geo.NewRegion(kernel.NewUUID(), "   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_id_rejected", func(t *testing.T) {
		_, err := geo.NewRegion(kernel.UUID{}, "Fergana")

		require.Error(t, err)
	})
}

func TestRegion_NameEquals(t *testing.T) {
	region, err := geo.NewRegion(kernel.NewUUID(), "Fergana")
	require.NoError(t, err)

	assert.True(t, region.NameEquals("fergana"))
	assert.True(t, region.NameEquals("FERGANA"))
	assert.True(t, region.NameEquals(" Fergana "))
	assert.False(t, region.NameEquals("Andijan"))
}

func TestRegion_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var region geo.Region

		err := region.Validate()

		require.Error(t, err)
		assert.Equal(t, geo.ErrRegionIsNotConstructed, err)
	})
}

func TestNewDistrict(t *testing.T) {
	t.Run("valid_district", func(t *testing.T) {
		id := kernel.NewUUID()
		regionID := kernel.NewUUID()

		district, err := geo.NewDistrict(id, regionID, "Quva")

		require.NoError(t, err)
		assert.True(t, district.ID().IsEqual(id))
		assert.True(t, district.RegionID().IsEqual(regionID))
		assert.Equal(t, "Quva", district.Name())
		require.NoError(t, district.Validate())
	})

	t.Run("missing_region_rejected", func(t *testing.T) {
		_, err := geo.NewDistrict(kernel.NewUUID(), kernel.UUID{}, "Quva")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := geo.NewDistrict(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDistrict_NameEquals(t *testing.T) {
	district, err := geo.NewDistrict(kernel.NewUUID(), kernel.NewUUID(), "Quva")
	require.NoError(t, err)

	assert.True(t, district.NameEquals("quva"))
	assert.False(t, district.NameEquals("Oltiariq"))
}
