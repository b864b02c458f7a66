package extractor

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Синонимы ключей, которые встречаются в сообщениях и ответах модели
var fieldAliases = map[string]string{
	"first_name":       domain.FieldName,
	"firstname":        domain.FieldName,
	"last_name":        domain.FieldSurname,
	"lastname":         domain.FieldSurname,
	"car":              domain.FieldCarNumber,
	"car_registration": domain.FieldCarNumber,
	"registration":     domain.FieldCarNumber,
	"plate":            domain.FieldCarNumber,
	"license_plate":    domain.FieldCarNumber,
	"start":            domain.FieldPeriodStart,
	"from":             domain.FieldPeriodStart,
	"end":              domain.FieldPeriodEnd,
	"to":               domain.FieldPeriodEnd,
	"until":            domain.FieldPeriodEnd,
}

// ParseFields разбирает пары "key: value", разделённые переводом строки или ';'.
// Значение берётся после первого двоеточия, поэтому "09:00" в нём не ломает разбор.
// Неизвестные ключи и пустые значения пропускаются.
func ParseFields(text string) domain.Draft {
	var draft domain.Draft

	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)
		if value == "" || value == "..." {
			continue
		}

		draft.Set(normalizeKey(key), value)
	}

	return draft.Normalize()
}

func normalizeKey(key string) string {
	key = strings.Trim(strings.TrimSpace(key), "-*• ")
	key = strings.ToLower(key)
	key = strings.Join(strings.FieldsFunc(key, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")

	if canonical, ok := fieldAliases[key]; ok {
		return canonical
	}
	return key
}
