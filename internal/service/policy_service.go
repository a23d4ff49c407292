package service

import (
	"context"
	"fmt"
	"math"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

// Действия, рекомендуемые симуляцией политики.
const (
	PolicyActionStricterOnboarding = "stricter_onboarding"
	PolicyActionMaintainCurrent    = "maintain_current"
)

// nonCompliantActionShare — доля несоответствующих продавцов, после
// которой рекомендуется ужесточение онбординга.
const nonCompliantActionShare = 0.2

// PolicyParams — пороги соответствия продавца политике площадки.
type PolicyParams struct {
	MinFulfillmentRate float64
	MaxComplaintRatio  float64
	MinTrustIndex      float64
}

// PolicySimulationResult — итог прогона политики по всем продавцам.
type PolicySimulationResult struct {
	TotalSellers          int     `json:"total_sellers"`
	CompliantSellers      int     `json:"compliant_sellers"`
	NonCompliantSellers   int     `json:"non_compliant_sellers"`
	ComplianceRate        float64 `json:"compliance_rate"`
	OrdersAtRisk          int     `json:"orders_at_risk"`
	OrderImpactPercentage float64 `json:"order_impact_percentage"`
	RecommendedAction     string  `json:"recommended_action"`
	EstimatedImprovement  float64 `json:"estimated_improvement"`
}

// PolicyService оценивает влияние порогов качества на состав продавцов.
type PolicyService struct {
	sellers SellerLister
}

// NewPolicyService создаёт сервис симуляции политик.
func NewPolicyService(sellers SellerLister) *PolicyService {
	return &PolicyService{sellers: sellers}
}

// Simulate делит продавцов на соответствующих и несоответствующих
// порогам и оценивает долю заказов под риском. Ничего не записывает.
func (s *PolicyService) Simulate(ctx context.Context, params PolicyParams) (*PolicySimulationResult, error) {
	sellers, err := s.sellers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("policy: не удалось прочитать продавцов: %w", err)
	}

	result := &PolicySimulationResult{
		TotalSellers:      len(sellers),
		RecommendedAction: PolicyActionMaintainCurrent,
	}

	totalOrders := 0
	for _, seller := range sellers {
		totalOrders += seller.TotalOrders

		if sellerCompliant(seller, params) {
			result.CompliantSellers++
		} else {
			result.NonCompliantSellers++
			result.OrdersAtRisk += seller.TotalOrders
		}
	}

	if result.TotalSellers > 0 {
		result.ComplianceRate = round2(float64(result.CompliantSellers) / float64(result.TotalSellers) * 100)

		nonCompliantShare := float64(result.NonCompliantSellers) / float64(result.TotalSellers)
		if nonCompliantShare > nonCompliantActionShare {
			result.RecommendedAction = PolicyActionStricterOnboarding
		}
		result.EstimatedImprovement = round2(math.Min(15, nonCompliantShare*30))
	}

	if totalOrders > 0 {
		result.OrderImpactPercentage = round2(float64(result.OrdersAtRisk) / float64(totalOrders) * 100)
	}

	return result, nil
}

// sellerCompliant проверяет продавца по всем трём порогам сразу.
func sellerCompliant(seller models.Seller, params PolicyParams) bool {
	return seller.FulfillmentRate >= params.MinFulfillmentRate &&
		seller.ComplaintRatio <= params.MaxComplaintRatio &&
		seller.TrustIndex >= params.MinTrustIndex
}
