package models

// TrustMetrics — сводный снимок доверия по всему маркетплейсу.
// Все поля — проценты 0..100, округлённые до 2 знаков. TrustIndex —
// взвешенная сумма независимо ограниченных компонентов и формально
// может выходить за 100; это ожидаемое поведение.
type TrustMetrics struct {
	TrustIndex           float64 `json:"trust_index"`
	DisputeRate          float64 `json:"dispute_rate"`
	RefundRatio          float64 `json:"refund_ratio"`
	PolicyBreachRate     float64 `json:"policy_breach_rate"`
	RepeatPurchaseUplift float64 `json:"repeat_purchase_uplift"`
	UserSatisfactionAvg  float64 `json:"user_satisfaction_avg"`
	FraudDetectionRate   float64 `json:"fraud_detection_rate"`
	SellerPerformanceAvg float64 `json:"seller_performance_avg"`
}

// GenerationStats — фактическое количество вставленных записей по
// каждой коллекции после прогона генератора. Reviews и Disputes могут
// быть меньше запрошенных, если подходящих заказов не хватило.
type GenerationStats struct {
	Users    int `json:"users"`
	Sellers  int `json:"sellers"`
	Orders   int `json:"orders"`
	Reviews  int `json:"reviews"`
	Disputes int `json:"disputes"`
}
