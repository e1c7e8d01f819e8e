package utils

import (
	"gym-guardian/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange возвращает случайное целое в отрезке [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// ChoosePattern выполняет взвешенный случайный выбор из таблицы паттернов.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChoosePattern(entries []defs.PatternEntry) defs.SpawnPattern {
	if len(entries) == 0 {
		return defs.PatternNormal
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Pattern
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Pattern
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Pattern
}
