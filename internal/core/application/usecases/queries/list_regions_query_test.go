package queries_test

import (
	"testing"

	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListRegionsQuery_Valid(t *testing.T) {
	query := queries.NewListRegionsQuery()
	require.NoError(t, query.Validate())
}

func TestListRegionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListRegionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListRegionsQueryIsNotConstructed)
}

func TestNewListRoutesQuery_Valid(t *testing.T) {
	query := queries.NewListRoutesQuery()
	require.NoError(t, query.Validate())
}

func TestListRoutesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListRoutesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListRoutesQueryIsNotConstructed)
}

func TestNewListDistrictsQuery_Valid(t *testing.T) {
	regionID := kernel.NewUUID()
	query, err := queries.NewListDistrictsQuery(regionID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, regionID.IsEqual(query.RegionID()))
}

func TestNewListDistrictsQuery_ZeroRegionID_ReturnsError(t *testing.T) {
	_, err := queries.NewListDistrictsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestListDistrictsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListDistrictsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListDistrictsQueryIsNotConstructed)
}
