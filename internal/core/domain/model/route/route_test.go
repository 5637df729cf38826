package route_test

import (
	"testing"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChannel(t *testing.T, id, name string) route.Channel {
	t.Helper()
	c, err := route.NewChannel(id, name)
	require.NoError(t, err)
	return c
}

func TestNewRoute(t *testing.T) {
	t.Run("region_level_route", func(t *testing.T) {
		id := kernel.NewUUID()
		from := kernel.NewUUID()
		to := kernel.NewUUID()

		r, err := route.NewRoute(id, from, nil, to, nil)

		require.NoError(t, err)
		assert.True(t, r.FromRegionID().IsEqual(from))
		assert.Nil(t, r.FromDistrictID())
		assert.True(t, r.ToRegionID().IsEqual(to))
		assert.Nil(t, r.ToDistrictID())
		assert.Empty(t, r.Channels())
	})

	t.Run("district_level_route", func(t *testing.T) {
		fromDistrict := kernel.NewUUID()

		r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), &fromDistrict, kernel.NewUUID(), nil)

		require.NoError(t, err)
		require.NotNil(t, r.FromDistrictID())
		assert.True(t, r.FromDistrictID().IsEqual(fromDistrict))
	})

	t.Run("missing_region_rejected", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), kernel.UUID{}, nil, kernel.NewUUID(), nil)

		require.Error(t, err)
	})
}

func TestRoute_AttachChannel(t *testing.T) {
	t.Run("attach_and_list", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
		require.NoError(t, err)

		require.NoError(t, r.AttachChannel(mustChannel(t, "-100111", "Fergana Taxi")))
		require.NoError(t, r.AttachChannel(mustChannel(t, "-100222", "Express")))

		channels := r.Channels()
		require.Len(t, channels, 2)
		assert.Equal(t, "-100111", channels[0].ID())
	})

	t.Run("duplicate_id_conflicts", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.AttachChannel(mustChannel(t, "-100111", "Fergana Taxi")))

		err = r.AttachChannel(mustChannel(t, "-100111", "Another Name"))

		require.ErrorIs(t, err, route.ErrChannelAlreadyAttached)
		assert.Len(t, r.Channels(), 1)
	})

	t.Run("channels_returns_a_copy", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.AttachChannel(mustChannel(t, "-100111", "Fergana Taxi")))

		channels := r.Channels()
		channels[0] = mustChannel(t, "-100999", "Mutated")

		assert.Equal(t, "-100111", r.Channels()[0].ID())
	})
}

func TestRoute_DetachChannel(t *testing.T) {
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
	require.NoError(t, err)
	require.NoError(t, r.AttachChannel(mustChannel(t, "-100111", "Fergana Taxi")))

	t.Run("detach_existing", func(t *testing.T) {
		require.NoError(t, r.DetachChannel("-100111"))
		assert.Empty(t, r.Channels())
	})

	t.Run("detach_missing_fails", func(t *testing.T) {
		err := r.DetachChannel("-100111")
		require.ErrorIs(t, err, route.ErrChannelNotAttached)
	})
}

func TestRoute_References(t *testing.T) {
	from := kernel.NewUUID()
	to := kernel.NewUUID()
	fromDistrict := kernel.NewUUID()

	r, err := route.NewRoute(kernel.NewUUID(), from, &fromDistrict, to, nil)
	require.NoError(t, err)

	assert.True(t, r.ReferencesRegion(from))
	assert.True(t, r.ReferencesRegion(to))
	assert.False(t, r.ReferencesRegion(kernel.NewUUID()))

	assert.True(t, r.ReferencesDistrict(fromDistrict))
	assert.False(t, r.ReferencesDistrict(kernel.NewUUID()))
}
