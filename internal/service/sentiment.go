package service

import (
	"github.com/jonreiter/govader"

	"github.com/ignatzorin/trustboard-backend/internal/models"
)

// Пороги классификации compound-оценки: >= +0.05 позитив, <= -0.05 негатив.
const (
	sentimentPositiveThreshold = 0.05
	sentimentNegativeThreshold = -0.05
)

// SentimentAnalyzer оборачивает лексический VADER-анализатор тональности.
// Анализатор детерминирован: один и тот же текст всегда даёт одну и ту
// же оценку, что важно для воспроизводимости генератора.
type SentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentAnalyzer создаёт анализатор со встроенным лексиконом.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze возвращает compound-оценку в [-1, 1] и метку тональности.
func (a *SentimentAnalyzer) Analyze(text string) (float64, string) {
	compound := a.analyzer.PolarityScores(text).Compound

	switch {
	case compound >= sentimentPositiveThreshold:
		return compound, models.SentimentPositive
	case compound <= sentimentNegativeThreshold:
		return compound, models.SentimentNegative
	default:
		return compound, models.SentimentNeutral
	}
}
