package resolve_options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// NormalizeAnswer проверяет ответ на опцию и приводит его к каноническому виду.
// Пустой результат означает удаление ответа.
func NormalizeAnswer(opt *domain.ProductOption, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	switch opt.Kind {
	case domain.OptionKindRadio, domain.OptionKindDropDown:
		if strings.Contains(raw, domain.MultiChoiceSeparator) {
			return "", fmt.Errorf("%w: %s", ErrMultipleValues, opt.Title)
		}
		if err := checkValue(opt, raw); err != nil {
			return "", err
		}
		return raw, nil

	case domain.OptionKindCheckbox, domain.OptionKindMultiple:
		return normalizeMulti(opt, raw)

	case domain.OptionKindDate:
		day := raw
		if len(day) > len(domain.DateFormat) && (day[len(domain.DateFormat)] == ' ' || day[len(domain.DateFormat)] == 'T') {
			day = day[:len(domain.DateFormat)]
		}
		if _, err := time.Parse(domain.DateFormat, day); err != nil {
			return "", fmt.Errorf("%w: %s=%q", ErrInvalidDate, opt.Title, raw)
		}
		return day, nil

	case domain.OptionKindField:
		return raw, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, opt.Kind)
}

// normalizeMulti убирает пустые и повторяющиеся идентификаторы, сохраняя порядок
func normalizeMulti(opt *domain.ProductOption, raw string) (string, error) {
	parts := strings.Split(raw, domain.MultiChoiceSeparator)
	seen := make(map[string]struct{}, len(parts))
	ids := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		if err := checkValue(opt, p); err != nil {
			return "", err
		}
		seen[p] = struct{}{}
		ids = append(ids, p)
	}

	return strings.Join(ids, domain.MultiChoiceSeparator), nil
}

func checkValue(opt *domain.ProductOption, raw string) error {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrUnknownValue, opt.Title, raw)
	}
	if _, ok := opt.Value(id); !ok {
		return fmt.Errorf("%w: %s=%q", ErrUnknownValue, opt.Title, raw)
	}
	return nil
}
