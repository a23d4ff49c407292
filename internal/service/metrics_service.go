package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

// Веса компонентов сводного trust_index. Сумма равна 1.0, менять
// по отдельности нельзя.
const (
	weightSatisfaction = 0.30
	weightDisputes     = 0.25
	weightRefunds      = 0.20
	weightSellers      = 0.15
	weightFraud        = 0.10
)

// policyBreachShare — доля споров, относимых к нарушениям политик.
const policyBreachShare = 0.70

type OrderLister interface {
	ListAll(ctx context.Context) ([]models.Order, error)
}

type ReviewLister interface {
	ListAll(ctx context.Context) ([]models.Review, error)
}

type SellerLister interface {
	ListAll(ctx context.Context) ([]models.Seller, error)
}

// MetricsService вычисляет сводные метрики доверия. Чистая функция от
// текущего содержимого хранилища: читает наборы целиком и считает
// формулы в памяти, ничего не записывая.
type MetricsService struct {
	orders  OrderLister
	reviews ReviewLister
	sellers SellerLister
}

// NewMetricsService создаёт калькулятор метрик.
func NewMetricsService(orders OrderLister, reviews ReviewLister, sellers SellerLister) *MetricsService {
	return &MetricsService{orders: orders, reviews: reviews, sellers: sellers}
}

// ComputeTrustMetrics возвращает снимок из восьми метрик. При пустом
// наборе заказов возвращается нулевой снимок — это не ошибка.
func (s *MetricsService) ComputeTrustMetrics(ctx context.Context) (*models.TrustMetrics, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: не удалось прочитать заказы: %w", err)
	}

	if len(orders) == 0 {
		return &models.TrustMetrics{}, nil
	}

	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: не удалось прочитать отзывы: %w", err)
	}

	sellers, err := s.sellers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: не удалось прочитать продавцов: %w", err)
	}

	totalOrders := len(orders)
	disputedOrders := 0
	returnedOrders := 0
	fraudOrders := 0
	for _, o := range orders {
		if o.IsDisputed {
			disputedOrders++
		}
		if o.IsReturned {
			returnedOrders++
		}
		if o.FraudFlag {
			fraudOrders++
		}
	}

	disputeRate := float64(disputedOrders) / float64(totalOrders) * 100
	refundRatio := float64(returnedOrders) / float64(totalOrders) * 100
	fraudRate := float64(fraudOrders) / float64(totalOrders) * 100

	// Средняя оценка отзывов, нормированная к процентам.
	avgRating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avgRating = float64(sum) / float64(len(reviews))
	}
	userSatisfactionAvg := avgRating / 5 * 100

	sellerPerformanceAvg := 0.0
	if len(sellers) > 0 {
		sum := 0.0
		for _, sl := range sellers {
			sum += sl.TrustIndex
		}
		sellerPerformanceAvg = sum / float64(len(sellers))
	}

	// Взвешенный композит. Каждый компонент ограничен [0, 100], но
	// компоненты не взаимоисключающие, поэтому сумма не клампится.
	trustIndex := userSatisfactionAvg*weightSatisfaction +
		(100-disputeRate)*weightDisputes +
		(100-refundRatio)*weightRefunds +
		sellerPerformanceAvg*weightSellers +
		(100-fraudRate)*weightFraud

	policyBreachRate := disputeRate * policyBreachShare

	// Доля покупателей с повторными покупками среди всех покупателей
	// хотя бы с одним заказом.
	ordersByUser := make(map[uuid.UUID]int)
	for _, o := range orders {
		ordersByUser[o.UserID]++
	}
	repeatCustomers := 0
	for _, n := range ordersByUser {
		if n > 1 {
			repeatCustomers++
		}
	}
	repeatPurchaseUplift := 0.0
	if len(ordersByUser) > 0 {
		repeatPurchaseUplift = float64(repeatCustomers) / float64(len(ordersByUser)) * 100
	}

	return &models.TrustMetrics{
		TrustIndex:           round2(trustIndex),
		DisputeRate:          round2(disputeRate),
		RefundRatio:          round2(refundRatio),
		PolicyBreachRate:     round2(policyBreachRate),
		RepeatPurchaseUplift: round2(repeatPurchaseUplift),
		UserSatisfactionAvg:  round2(userSatisfactionAvg),
		FraudDetectionRate:   round2(fraudRate),
		SellerPerformanceAvg: round2(sellerPerformanceAvg),
	}, nil
}
