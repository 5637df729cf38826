package queries_test

import (
	"testing"

	"taxidispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverAccountQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDriverAccountQuery("driver-42")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "driver-42", query.DriverID())
}

func TestNewGetDriverAccountQuery_EmptyDriverID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetDriverAccountQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrDriverIDIsRequired)
}

func TestGetDriverAccountQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDriverAccountQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDriverAccountQueryIsNotConstructed)
}
