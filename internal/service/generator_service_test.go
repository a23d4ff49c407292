package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *GeneratorService {
	return &GeneratorService{
		sentiment: NewSentimentAnalyzer(),
		now:       func() time.Time { return testNow },
	}
}

func TestBuildUsers_Deterministic(t *testing.T) {
	rngA := rand.New(rand.NewSource(42))
	rngB := rand.New(rand.NewSource(42))

	usersA := buildUsers(rngA, newFakeSource(rngA), testNow, 50)
	usersB := buildUsers(rngB, newFakeSource(rngB), testNow, 50)

	require.Len(t, usersA, 50)
	assert.Equal(t, usersA, usersB)
}

func TestBuildUsers_DifferentSeeds(t *testing.T) {
	rngA := rand.New(rand.NewSource(1))
	rngB := rand.New(rand.NewSource(2))

	usersA := buildUsers(rngA, newFakeSource(rngA), testNow, 10)
	usersB := buildUsers(rngB, newFakeSource(rngB), testNow, 10)

	assert.NotEqual(t, usersA, usersB)
}

func TestBuildUsers_FieldBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	users := buildUsers(rng, newFakeSource(rng), testNow, 100)

	for _, u := range users {
		assert.NotEmpty(t, u.Name)
		assert.Contains(t, u.Email, "@")
		assert.Contains(t, models.Regions, u.Region)
		assert.GreaterOrEqual(t, u.SatisfactionScore, 1.0)
		assert.LessOrEqual(t, u.SatisfactionScore, 5.0)
		assert.GreaterOrEqual(t, u.TotalOrders, 0)
		assert.LessOrEqual(t, u.TotalOrders, 50)
		assert.False(t, u.JoinDate.After(testNow))
		assert.False(t, u.JoinDate.Before(testNow.AddDate(-2, 0, 0)))
	}
}

func TestBuildSellers_TrustIndexFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sellers := buildSellers(rng, newFakeSource(rng), testNow, 100)

	require.Len(t, sellers, 100)
	for _, s := range sellers {
		assert.GreaterOrEqual(t, s.FulfillmentRate, 0.7)
		assert.LessOrEqual(t, s.FulfillmentRate, 1.0)
		assert.GreaterOrEqual(t, s.ReturnRate, 0.0)
		assert.LessOrEqual(t, s.ReturnRate, 0.3)
		assert.GreaterOrEqual(t, s.ComplaintRatio, 0.0)
		assert.LessOrEqual(t, s.ComplaintRatio, 0.2)

		// Индекс доверия фиксируется в момент генерации из округлённых
		// компонент и больше не пересчитывается.
		expected := round2(s.FulfillmentRate*40 + (1-s.ReturnRate)*30 + (1-s.ComplaintRatio)*30)
		assert.InDelta(t, expected, s.TrustIndex, 0.1)
	}
}

func TestBuildOrders_ReferentialIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)

	users := buildUsers(rng, fake, testNow, 20)
	sellers := buildSellers(rng, fake, testNow, 5)
	orders := buildOrders(rng, testNow, users, sellers, 200)

	require.Len(t, orders, 200)

	userIDs := make(map[string]string, len(users))
	for _, u := range users {
		userIDs[u.ID.String()] = u.Region
	}
	sellerIDs := make(map[string]string, len(sellers))
	for _, s := range sellers {
		sellerIDs[s.ID.String()] = s.Category
	}

	for _, o := range orders {
		region, ok := userIDs[o.UserID.String()]
		require.True(t, ok, "заказ ссылается на несуществующего пользователя")
		category, ok := sellerIDs[o.SellerID.String()]
		require.True(t, ok, "заказ ссылается на несуществующего продавца")

		// Категория наследуется от продавца, регион — от покупателя.
		assert.Equal(t, category, o.Category)
		assert.Equal(t, region, o.Region)

		assert.GreaterOrEqual(t, o.Amount, 10.0)
		assert.LessOrEqual(t, o.Amount, 1000.0)

		if o.FulfillmentDate != nil {
			assert.True(t, o.FulfillmentDate.After(o.OrderDate))
			days := o.FulfillmentDate.Sub(o.OrderDate).Hours() / 24
			assert.LessOrEqual(t, days, float64(maxFulfillmentDays))
		}
	}
}

func TestBuildOrders_EmptyInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)
	sellers := buildSellers(rng, fake, testNow, 5)

	assert.Empty(t, buildOrders(rng, testNow, nil, sellers, 10))
	assert.Empty(t, buildOrders(rng, testNow, buildUsers(rng, fake, testNow, 5), nil, 10))
}

func TestBuildReviews_LinkedToOrders(t *testing.T) {
	svc := newTestGenerator()

	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)
	users := buildUsers(rng, fake, testNow, 10)
	sellers := buildSellers(rng, fake, testNow, 5)
	orders := buildOrders(rng, testNow, users, sellers, 100)

	reviews := svc.buildReviews(rng, testNow, orders, 60)
	require.Len(t, reviews, 60)

	orderByID := make(map[string]int, len(orders))
	for i, o := range orders {
		orderByID[o.ID.String()] = i
	}

	for _, r := range reviews {
		idx, ok := orderByID[r.OrderID.String()]
		require.True(t, ok, "отзыв ссылается на несуществующий заказ")

		// Покупатель и продавец в отзыве совпадают с заказом.
		assert.Equal(t, orders[idx].UserID, r.UserID)
		assert.Equal(t, orders[idx].SellerID, r.SellerID)

		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.ReviewText)
		assert.False(t, r.ReviewDate.Before(orders[idx].OrderDate))
		assert.False(t, r.ReviewDate.After(testNow))
	}
}

func TestBuildReviews_SentimentMatchesRatingBucket(t *testing.T) {
	svc := newTestGenerator()

	rng := rand.New(rand.NewSource(7))
	fake := newFakeSource(rng)
	users := buildUsers(rng, fake, testNow, 10)
	sellers := buildSellers(rng, fake, testNow, 5)
	orders := buildOrders(rng, testNow, users, sellers, 100)

	reviews := svc.buildReviews(rng, testNow, orders, 80)
	for _, r := range reviews {
		score, label := svc.sentiment.Analyze(r.ReviewText)
		assert.Equal(t, r.SentimentScore, score)
		assert.Equal(t, r.SentimentLabel, label)
	}
}

func TestBuildReviews_CappedByOrderCount(t *testing.T) {
	svc := newTestGenerator()

	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)
	users := buildUsers(rng, fake, testNow, 5)
	sellers := buildSellers(rng, fake, testNow, 2)
	orders := buildOrders(rng, testNow, users, sellers, 10)

	reviews := svc.buildReviews(rng, testNow, orders, 1000)
	assert.Len(t, reviews, 10)
}

func TestBuildDisputes_OnlyDisputedOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)
	users := buildUsers(rng, fake, testNow, 50)
	sellers := buildSellers(rng, fake, testNow, 10)
	orders := buildOrders(rng, testNow, users, sellers, 2000)

	disputedCount := 0
	disputedByID := make(map[string]int, len(orders))
	for i, o := range orders {
		if o.IsDisputed {
			disputedCount++
			disputedByID[o.ID.String()] = i
		}
	}
	require.Greater(t, disputedCount, 0)

	disputes := buildDisputes(rng, fake, testNow, orders, 2000)

	// Споров не может быть больше, чем спорных заказов.
	assert.Len(t, disputes, disputedCount)

	for _, d := range disputes {
		idx, ok := disputedByID[d.OrderID.String()]
		require.True(t, ok, "спор ссылается на заказ без флага is_disputed")

		order := orders[idx]
		assert.Equal(t, order.UserID, d.UserID)
		assert.Equal(t, order.SellerID, d.SellerID)
		assert.Equal(t, order.Amount, d.Amount)
		assert.False(t, d.DisputeDate.Before(order.OrderDate))

		// Резолюция либо заполнена целиком, либо отсутствует целиком.
		if d.Resolution != nil {
			require.NotNil(t, d.ResolutionDate)
			assert.False(t, d.ResolutionDate.Before(d.DisputeDate))
		} else {
			assert.Nil(t, d.ResolutionDate)
		}
	}
}

func TestBuildDisputes_RequestedLessThanDisputed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fake := newFakeSource(rng)
	users := buildUsers(rng, fake, testNow, 50)
	sellers := buildSellers(rng, fake, testNow, 10)
	orders := buildOrders(rng, testNow, users, sellers, 2000)

	disputes := buildDisputes(rng, fake, testNow, orders, 3)
	assert.Len(t, disputes, 3)
}

func TestWeightedRating_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	counts := make(map[int]int)
	for i := 0; i < 10000; i++ {
		r := weightedRating(rng)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 5)
		counts[r]++
	}

	// Распределение смещено к позитиву: пятёрок больше, чем единиц.
	assert.Greater(t, counts[5], counts[1])
	assert.Greater(t, counts[4], counts[2])
}

func TestNewID_Deterministic(t *testing.T) {
	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))

	for i := 0; i < 10; i++ {
		assert.Equal(t, newID(rngA), newID(rngB))
	}
}

func TestDateBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := testNow.AddDate(-1, 0, 0)

	for i := 0; i < 100; i++ {
		d := dateBetween(rng, start, testNow)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(testNow))
	}

	// Вырожденный интервал возвращает начало.
	assert.Equal(t, testNow, dateBetween(rng, testNow, testNow))
	assert.Equal(t, testNow, dateBetween(rng, testNow, start))
}
