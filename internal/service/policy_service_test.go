package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

func defaultPolicyParams() PolicyParams {
	return PolicyParams{
		MinFulfillmentRate: 0.9,
		MaxComplaintRatio:  0.1,
		MinTrustIndex:      70,
	}
}

func TestPolicySimulate_SplitsSellers(t *testing.T) {
	sellers := []models.Seller{
		// Соответствует всем трём порогам
		{FulfillmentRate: 0.95, ComplaintRatio: 0.05, TrustIndex: 85, TotalOrders: 100},
		// Низкий fulfillment
		{FulfillmentRate: 0.80, ComplaintRatio: 0.05, TrustIndex: 85, TotalOrders: 50},
		// Высокий complaint ratio
		{FulfillmentRate: 0.95, ComplaintRatio: 0.15, TrustIndex: 85, TotalOrders: 30},
		// Низкий trust index
		{FulfillmentRate: 0.95, ComplaintRatio: 0.05, TrustIndex: 60, TotalOrders: 20},
	}

	svc := NewPolicyService(&stubSellerLister{sellers: sellers})
	result, err := svc.Simulate(context.Background(), defaultPolicyParams())
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalSellers)
	assert.Equal(t, 1, result.CompliantSellers)
	assert.Equal(t, 3, result.NonCompliantSellers)
	assert.Equal(t, 25.0, result.ComplianceRate)

	// Под риском заказы всех несоответствующих продавцов: 100 из 200.
	assert.Equal(t, 100, result.OrdersAtRisk)
	assert.Equal(t, 50.0, result.OrderImpactPercentage)

	// Доля несоответствующих 0.75 > 0.2 — рекомендуется ужесточение.
	assert.Equal(t, PolicyActionStricterOnboarding, result.RecommendedAction)

	// min(15, 0.75*30) = 15
	assert.Equal(t, 15.0, result.EstimatedImprovement)
}

func TestPolicySimulate_AllCompliant(t *testing.T) {
	sellers := []models.Seller{
		{FulfillmentRate: 0.95, ComplaintRatio: 0.02, TrustIndex: 90, TotalOrders: 10},
		{FulfillmentRate: 0.92, ComplaintRatio: 0.08, TrustIndex: 75, TotalOrders: 20},
	}

	svc := NewPolicyService(&stubSellerLister{sellers: sellers})
	result, err := svc.Simulate(context.Background(), defaultPolicyParams())
	require.NoError(t, err)

	assert.Equal(t, 2, result.CompliantSellers)
	assert.Equal(t, 0, result.NonCompliantSellers)
	assert.Equal(t, 100.0, result.ComplianceRate)
	assert.Equal(t, 0, result.OrdersAtRisk)
	assert.Equal(t, 0.0, result.OrderImpactPercentage)
	assert.Equal(t, PolicyActionMaintainCurrent, result.RecommendedAction)
	assert.Equal(t, 0.0, result.EstimatedImprovement)
}

func TestPolicySimulate_BoundaryValuesCompliant(t *testing.T) {
	// Пороговые значения включительны.
	sellers := []models.Seller{
		{FulfillmentRate: 0.9, ComplaintRatio: 0.1, TrustIndex: 70, TotalOrders: 5},
	}

	svc := NewPolicyService(&stubSellerLister{sellers: sellers})
	result, err := svc.Simulate(context.Background(), defaultPolicyParams())
	require.NoError(t, err)

	assert.Equal(t, 1, result.CompliantSellers)
	assert.Equal(t, 0, result.NonCompliantSellers)
}

func TestPolicySimulate_EmptySellers(t *testing.T) {
	svc := NewPolicyService(&stubSellerLister{})
	result, err := svc.Simulate(context.Background(), defaultPolicyParams())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalSellers)
	assert.Equal(t, 0.0, result.ComplianceRate)
	assert.Equal(t, PolicyActionMaintainCurrent, result.RecommendedAction)
}

func TestPolicySimulate_ListError(t *testing.T) {
	listErr := errors.New("база недоступна")
	svc := NewPolicyService(&stubSellerLister{err: listErr})

	_, err := svc.Simulate(context.Background(), defaultPolicyParams())
	assert.ErrorIs(t, err, listErr)
}
