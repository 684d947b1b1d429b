package queries_test

import (
	"testing"

	"courierapp/internal/core/application/usecases/queries"
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	// Arrange
	status := lo.ToPtr(order.StatusNew)
	courierID := kernel.NewUUID()
	viewerID := kernel.NewUUID()

	// Act
	query, err := queries.NewGetOrdersQuery(status, &courierID, &viewerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, status, query.Status())
	assert.Equal(t, &courierID, query.CourierID())
	assert.Equal(t, &viewerID, query.ViewerID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_EmptyFilter(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, query.Status())
	assert.Nil(t, query.CourierID())
	assert.Nil(t, query.ViewerID())
}

func TestNewGetOrdersQuery_InvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		status    *order.Status
		courierID *kernel.UUID
		viewerID  *kernel.UUID
	}{
		{"unknown status filter", lo.ToPtr(order.Status("shipped")), nil, nil},
		{"zero courier id", nil, &kernel.UUID{}, nil},
		{"zero viewer id", nil, nil, &kernel.UUID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetOrdersQuery(tc.status, tc.courierID, tc.viewerID)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestGetOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
