package resolve_options

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// Resolver вычисляет видимость опций и payload для корзины.
// Чистый: не изменяет переданные опции и ответы.
type Resolver struct {
	rules []DependencyRule
}

// NewResolver создает резолвер с декларативной таблицей зависимостей
func NewResolver(rules []DependencyRule) *Resolver {
	copied := make([]DependencyRule, len(rules))
	copy(copied, rules)
	return &Resolver{rules: copied}
}

// Resolve вычисляет видимость, незаполненные обязательные опции и payload
func (r *Resolver) Resolve(options []domain.ProductOption, selected domain.SelectedOptions) Result {
	deps := compile(r.rules, options)
	visibility := make(map[int64]bool, len(options))

	var visible func(id int64, depth int) bool
	visible = func(id int64, depth int) bool {
		if v, ok := visibility[id]; ok {
			return v
		}
		dep, dependent := deps[id]
		result := true
		if dependent {
			// Скрытая управляющая опция скрывает и зависимые
			result = dep.affirmativeID != "" &&
				depth <= len(options) &&
				visible(dep.controllerID, depth+1) &&
				strings.TrimSpace(selected[dep.controllerID]) == dep.affirmativeID
		}
		visibility[id] = result
		return result
	}

	res := Result{
		States:  make([]OptionState, 0, len(options)),
		Payload: make([]domain.CartItemOption, 0, len(options)),
	}

	for i := range options {
		opt := &options[i]
		isVisible := visible(opt.ID, 0)
		answer, answered := selected.Answer(opt.ID)

		res.States = append(res.States, OptionState{
			OptionID: opt.ID,
			Title:    opt.Title,
			Visible:  isVisible,
			Required: isVisible && opt.Required,
			Answered: answered,
		})

		if !isVisible {
			continue
		}
		if !answered {
			if opt.Required {
				res.Missing = append(res.Missing, MissingOption{OptionID: opt.ID, Title: opt.Title})
			}
			continue
		}
		res.Payload = append(res.Payload, payloadEntry(opt, answer))
	}

	return res
}

func payloadEntry(opt *domain.ProductOption, answer string) domain.CartItemOption {
	if opt.Kind == domain.OptionKindDate {
		return domain.CartItemOption{OptionID: opt.ID, ValueDate: FormatDateValue(answer)}
	}
	return domain.CartItemOption{OptionID: opt.ID, ValueString: answer}
}

// FormatDateValue переводит "YYYY-MM-DD" в "YYYY-MM-DD 00:00:00" без учета часового пояса
func FormatDateValue(day string) string {
	day = strings.TrimSpace(day)
	if len(day) > len(domain.DateFormat) {
		day = day[:len(domain.DateFormat)]
	}
	t, err := time.Parse(domain.DateFormat, day)
	if err != nil {
		return day + " 00:00:00"
	}
	return t.Format(domain.OptionDateWireFormat)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
