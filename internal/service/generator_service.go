package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/trustboard-backend/internal/logger"
	"github.com/ignatzorin/trustboard-backend/internal/models"
	"github.com/ignatzorin/trustboard-backend/internal/repository"
	"github.com/ignatzorin/trustboard-backend/internal/repository/common"
)

// Вероятности флагов заказа и прочие параметры распределений.
const (
	orderDisputedProbability = 0.05
	orderReturnedProbability = 0.08
	orderFraudProbability    = 0.02

	orderFulfilledProbability  = 0.9
	disputeResolvedProbability = 0.7
	maxFulfillmentDays         = 14
)

// ratingWeights — веса оценок 1..5: распределение смещено к позитиву.
var ratingWeights = []int{5, 10, 20, 35, 30}

var positiveReviews = []string{
	"Excellent product! Fast delivery and great quality.",
	"Amazing seller, highly recommended!",
	"Perfect transaction, will buy again.",
	"Outstanding service and communication.",
	"Great value for money, very satisfied.",
	"Quick shipping, exactly as described.",
	"Professional seller, smooth transaction.",
	"High quality product, exceeded expectations.",
}

var negativeReviews = []string{
	"Product not as described, very disappointed.",
	"Terrible quality, waste of money.",
	"Slow delivery, poor communication.",
	"Item arrived damaged, seller unresponsive.",
	"Complete scam, avoid this seller.",
	"Poor quality, not worth the price.",
	"Bad experience, would not recommend.",
	"Item never arrived, no refund given.",
}

var neutralReviews = []string{
	"Product is okay, nothing special.",
	"Average quality, decent price.",
	"It's fine, does what it's supposed to do.",
	"Not bad, but could be better.",
	"Reasonable quality for the price.",
	"Standard product, no complaints.",
	"It works, but not impressive.",
	"Fair transaction, average seller.",
}

// GenerationRequest задаёт объёмы генерации и seed.
type GenerationRequest struct {
	NumUsers    int
	NumSellers  int
	NumOrders   int
	NumReviews  int
	NumDisputes int
	Seed        int64
}

// GeneratorService порождает согласованный синтетический набор данных:
// пять коллекций с корректными перекрёстными ссылками. Источник
// случайности передаётся явно и расходуется в фиксированном порядке
// (users -> sellers -> orders -> reviews -> disputes), поэтому при
// одном seed и одинаковых объёмах два прогона дают идентичные записи.
type GeneratorService struct {
	db        *sqlx.DB
	users     *repository.UserRepository
	sellers   *repository.SellerRepository
	orders    *repository.OrderRepository
	reviews   *repository.ReviewRepository
	disputes  *repository.DisputeRepository
	sentiment *SentimentAnalyzer

	// mu сериализует прогоны: конкурентные замены снимка недопустимы.
	mu sync.Mutex

	// now подменяется в тестах для воспроизводимых дат.
	now func() time.Time
}

// NewGeneratorService создаёт генератор синтетических данных.
func NewGeneratorService(
	db *sqlx.DB,
	users *repository.UserRepository,
	sellers *repository.SellerRepository,
	orders *repository.OrderRepository,
	reviews *repository.ReviewRepository,
	disputes *repository.DisputeRepository,
	sentiment *SentimentAnalyzer,
) *GeneratorService {
	return &GeneratorService{
		db:        db,
		users:     users,
		sellers:   sellers,
		orders:    orders,
		reviews:   reviews,
		disputes:  disputes,
		sentiment: sentiment,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Generate строит пять наборов записей в памяти и атомарно заменяет ими
// текущий снимок хранилища. Возвращает фактические количества вставок:
// отзывов и споров может оказаться меньше запрошенного, если подходящих
// заказов не хватило — это документированное поведение, не ошибка.
func (s *GeneratorService) Generate(ctx context.Context, req GenerationRequest) (*models.GenerationStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rng := rand.New(rand.NewSource(req.Seed))
	fake := newFakeSource(rng)
	now := s.now()

	// Каждая следующая фаза ссылается только на уже построенные наборы,
	// ссылочная целостность обеспечена конструкцией.
	users := buildUsers(rng, fake, now, req.NumUsers)
	sellers := buildSellers(rng, fake, now, req.NumSellers)
	orders := buildOrders(rng, now, users, sellers, req.NumOrders)
	reviews := s.buildReviews(rng, now, orders, req.NumReviews)
	disputes := buildDisputes(rng, fake, now, orders, req.NumDisputes)

	err := common.WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		// Сначала удаляем зависимые коллекции, затем базовые.
		if err := s.disputes.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("delete disputes: %w", err)
		}
		if err := s.reviews.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		if err := s.orders.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("delete orders: %w", err)
		}
		if err := s.sellers.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("delete sellers: %w", err)
		}
		if err := s.users.DeleteAll(ctx, tx); err != nil {
			return fmt.Errorf("delete users: %w", err)
		}

		if err := s.users.InsertBatch(ctx, tx, users); err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
		if err := s.sellers.InsertBatch(ctx, tx, sellers); err != nil {
			return fmt.Errorf("insert sellers: %w", err)
		}
		if err := s.orders.InsertBatch(ctx, tx, orders); err != nil {
			return fmt.Errorf("insert orders: %w", err)
		}
		if err := s.reviews.InsertBatch(ctx, tx, reviews); err != nil {
			return fmt.Errorf("insert reviews: %w", err)
		}
		if err := s.disputes.InsertBatch(ctx, tx, disputes); err != nil {
			return fmt.Errorf("insert disputes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generator: не удалось заменить снимок данных: %w", err)
	}

	stats := &models.GenerationStats{
		Users:    len(users),
		Sellers:  len(sellers),
		Orders:   len(orders),
		Reviews:  len(reviews),
		Disputes: len(disputes),
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":     req.Seed,
		"users":    stats.Users,
		"sellers":  stats.Sellers,
		"orders":   stats.Orders,
		"reviews":  stats.Reviews,
		"disputes": stats.Disputes,
	}).Info("generator: снимок данных заменён")

	return stats, nil
}

// buildUsers создаёт пользователей. Перекрёстных ссылок нет.
func buildUsers(rng *rand.Rand, fake *fakeSource, now time.Time, count int) []models.User {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		firstName := fake.FirstName()
		lastName := fake.LastName()

		users = append(users, models.User{
			ID:                newID(rng),
			Name:              firstName + " " + lastName,
			Email:             fake.Email(firstName, lastName),
			Region:            models.Regions[rng.Intn(len(models.Regions))],
			JoinDate:          dateBetween(rng, now.AddDate(-2, 0, 0), now),
			TotalOrders:       rng.Intn(51),
			SatisfactionScore: uniform(rng, 1.0, 5.0),
			CreatedAt:         now,
		})
	}
	return users
}

// buildSellers создаёт продавцов. TrustIndex вычисляется здесь же и
// больше никогда не пересчитывается.
func buildSellers(rng *rand.Rand, fake *fakeSource, now time.Time, count int) []models.Seller {
	sellers := make([]models.Seller, 0, count)
	for i := 0; i < count; i++ {
		fulfillmentRate := uniform(rng, 0.7, 1.0)
		returnRate := uniform(rng, 0.0, 0.3)
		complaintRatio := uniform(rng, 0.0, 0.2)

		trustIndex := fulfillmentRate*40 + (1-returnRate)*30 + (1-complaintRatio)*30

		sellers = append(sellers, models.Seller{
			ID:              newID(rng),
			Name:            fake.CompanyName(),
			BusinessType:    models.BusinessTypes[rng.Intn(len(models.BusinessTypes))],
			Region:          models.Regions[rng.Intn(len(models.Regions))],
			Category:        models.Categories[rng.Intn(len(models.Categories))],
			JoinDate:        dateBetween(rng, now.AddDate(-3, 0, 0), now),
			TrustIndex:      round2(trustIndex),
			FulfillmentRate: round3(fulfillmentRate),
			ReturnRate:      round3(returnRate),
			ComplaintRatio:  round3(complaintRatio),
			TotalOrders:     rng.Intn(1001),
			CreatedAt:       now,
		})
	}
	return sellers
}

// buildOrders создаёт заказы. Пользователь и продавец разыгрываются
// равномерно С ВОЗВРАЩЕНИЕМ: дубли ссылок ожидаемы, на них опираются
// метрики повторных покупок.
func buildOrders(rng *rand.Rand, now time.Time, users []models.User, sellers []models.Seller, count int) []models.Order {
	if len(users) == 0 || len(sellers) == 0 {
		return nil
	}

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		user := users[rng.Intn(len(users))]
		seller := sellers[rng.Intn(len(sellers))]

		orderDate := dateBetween(rng, now.AddDate(-1, 0, 0), now)

		var fulfillmentDate *time.Time
		if rng.Float64() < orderFulfilledProbability {
			d := orderDate.AddDate(0, 0, 1+rng.Intn(maxFulfillmentDays))
			fulfillmentDate = &d
		}

		orders = append(orders, models.Order{
			ID:              newID(rng),
			UserID:          user.ID,
			SellerID:        seller.ID,
			Amount:          round2(uniform(rng, 10.0, 1000.0)),
			Status:          models.OrderStatuses[rng.Intn(len(models.OrderStatuses))],
			Category:        seller.Category,
			Region:          user.Region,
			OrderDate:       orderDate,
			FulfillmentDate: fulfillmentDate,
			IsDisputed:      rng.Float64() < orderDisputedProbability,
			IsReturned:      rng.Float64() < orderReturnedProbability,
			FraudFlag:       rng.Float64() < orderFraudProbability,
			CreatedAt:       now,
		})
	}
	return orders
}

// buildReviews создаёт отзывы: заказ разыгрывается с возвращением,
// поэтому у заказа может быть несколько отзывов или ни одного.
func (s *GeneratorService) buildReviews(rng *rand.Rand, now time.Time, orders []models.Order, count int) []models.Review {
	if len(orders) == 0 {
		return nil
	}
	if count > len(orders) {
		count = len(orders)
	}

	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		order := orders[rng.Intn(len(orders))]
		rating := weightedRating(rng)
		text := reviewTextForRating(rng, rating)
		score, label := s.sentiment.Analyze(text)

		reviews = append(reviews, models.Review{
			ID:             newID(rng),
			OrderID:        order.ID,
			UserID:         order.UserID,
			SellerID:       order.SellerID,
			Rating:         rating,
			ReviewText:     text,
			SentimentScore: score,
			SentimentLabel: label,
			ReviewDate:     dateBetween(rng, order.OrderDate, now),
			CreatedAt:      now,
		})
	}
	return reviews
}

// buildDisputes создаёт споры по заказам с is_disputed. Берутся первые
// N спорных заказов в порядке генерации; если их меньше запрошенного,
// споров получится меньше.
func buildDisputes(rng *rand.Rand, fake *fakeSource, now time.Time, orders []models.Order, count int) []models.Dispute {
	var disputed []models.Order
	for _, o := range orders {
		if o.IsDisputed {
			disputed = append(disputed, o)
		}
	}
	if count > len(disputed) {
		count = len(disputed)
	}

	disputes := make([]models.Dispute, 0, count)
	for _, order := range disputed[:count] {
		disputeDate := dateBetween(rng, order.OrderDate, now)

		var resolution *string
		var resolutionDate *time.Time
		if rng.Float64() < disputeResolvedProbability {
			// Резолюция не может предшествовать открытию спора.
			d := dateBetween(rng, disputeDate, now)
			text := fake.ResolutionText()
			resolution = &text
			resolutionDate = &d
		}

		disputes = append(disputes, models.Dispute{
			ID:             newID(rng),
			OrderID:        order.ID,
			UserID:         order.UserID,
			SellerID:       order.SellerID,
			DisputeType:    models.DisputeTypes[rng.Intn(len(models.DisputeTypes))],
			Amount:         order.Amount,
			Status:         models.DisputeStatuses[rng.Intn(len(models.DisputeStatuses))],
			Resolution:     resolution,
			DisputeDate:    disputeDate,
			ResolutionDate: resolutionDate,
			CreatedAt:      now,
		})
	}
	return disputes
}

// reviewTextForRating выбирает шаблон отзыва по корзине оценки.
func reviewTextForRating(rng *rand.Rand, rating int) string {
	switch {
	case rating >= 4:
		return positiveReviews[rng.Intn(len(positiveReviews))]
	case rating <= 2:
		return negativeReviews[rng.Intn(len(negativeReviews))]
	default:
		return neutralReviews[rng.Intn(len(neutralReviews))]
	}
}

// weightedRating разыгрывает оценку 1..5 по ratingWeights.
func weightedRating(rng *rand.Rand) int {
	total := 0
	for _, w := range ratingWeights {
		total += w
	}

	n := rng.Intn(total)
	for i, w := range ratingWeights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return len(ratingWeights)
}

// newID возвращает UUID, считанный из seeded-источника: при
// фиксированном seed идентификаторы воспроизводятся.
func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read ошибок не возвращает
		return uuid.New()
	}
	return id
}

// dateBetween возвращает момент, равномерно распределённый в [start, end].
func dateBetween(rng *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span) + 1)))
}

// uniform возвращает число, равномерно распределённое в [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
