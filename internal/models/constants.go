package models

// Regions — шесть регионов пользователей и продавцов.
var Regions = []string{
	"North America", "Europe", "Asia", "South America", "Africa", "Oceania",
}

// Categories — восемь категорий товаров.
var Categories = []string{
	"Electronics", "Fashion", "Home & Garden", "Books",
	"Sports", "Automotive", "Health", "Toys",
}

// BusinessTypes — типы бизнеса продавцов.
var BusinessTypes = []string{
	"Individual", "Small Business", "Enterprise", "Startup",
}

// OrderStatus константы статусов заказов
const (
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
	OrderStatusReturned  = "returned"
)

// OrderStatuses — все статусы заказа в порядке розыгрыша генератором.
var OrderStatuses = []string{
	OrderStatusCompleted,
	OrderStatusPending,
	OrderStatusCancelled,
	OrderStatusReturned,
}

// DisputeStatus константы статусов споров
const (
	DisputeStatusOpen      = "open"
	DisputeStatusResolved  = "resolved"
	DisputeStatusEscalated = "escalated"
	DisputeStatusClosed    = "closed"
)

// DisputeStatuses — все статусы спора.
var DisputeStatuses = []string{
	DisputeStatusOpen,
	DisputeStatusResolved,
	DisputeStatusEscalated,
	DisputeStatusClosed,
}

// DisputeTypes — пять типов споров.
var DisputeTypes = []string{
	"Product Quality", "Delivery Issues", "Billing Dispute",
	"Seller Fraud", "Refund Request",
}

// SentimentLabel константы меток тональности
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)
