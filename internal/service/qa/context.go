package qa

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ContextBuilder собирает актуальные данные парковки в текст для ответа.
// Ошибка любого из запросов попадает в текст строкой "Error getting ...", а не наружу.
type ContextBuilder struct {
	repo         ParkingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewContextBuilder создает сборщик контекста
func NewContextBuilder(repo ParkingRepository, logger Logger) *ContextBuilder {
	return &ContextBuilder{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Build возвращает блок "## Dynamic data (current)"
func (b *ContextBuilder) Build(ctx context.Context) string {
	lines := []string{"## Dynamic data (current)\n"}

	if hours, err := b.repo.GetWorkingHours(ctx); err != nil {
		b.logger.Warn("Build: working hours: %v", err)
		lines = append(lines, fmt.Sprintf("Error getting working hours: %v", err))
	} else {
		parts := make([]string, 0, len(hours))
		for _, h := range hours {
			parts = append(parts, fmt.Sprintf("%s %s-%s", h.Day, h.Open, h.Close))
		}
		lines = append(lines, "Working hours: "+strings.Join(parts, "; "))
	}

	if prices, err := b.repo.GetPrices(ctx); err != nil {
		b.logger.Warn("Build: prices: %v", err)
		lines = append(lines, fmt.Sprintf("Error getting prices: %v", err))
	} else {
		parts := make([]string, 0, len(prices))
		for _, p := range prices {
			parts = append(parts, fmt.Sprintf("%s: first hour %s EUR, then %s EUR/h, day max %s EUR",
				p.SpaceType, formatEUR(p.FirstHour), formatEUR(p.NextHours), formatEUR(p.DayMax)))
		}
		lines = append(lines, "Prices: "+strings.Join(parts, "; "))
	}

	today := b.timeProvider.Now().Format(domain.DateFormat)
	if avail, err := b.repo.GetAvailabilitySummary(ctx, today); err != nil {
		b.logger.Warn("Build: availability: %v", err)
		lines = append(lines, fmt.Sprintf("Error getting availability: %v", err))
	} else {
		lines = append(lines, fmt.Sprintf("Availability today (%s): %d of %d slots free.", today, avail.Available, avail.Total))
	}

	return strings.Join(lines, "\n")
}

func formatEUR(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
