package resolve_options

import "github.com/m04kA/SMC-TourBooking/internal/domain"

// DefaultRules правила каталога: время прибытия и отправления корабля
// спрашиваем только у туристов с круизного судна
func DefaultRules() []DependencyRule {
	return []DependencyRule{
		{
			ControllerTitle:       domain.CruiseShipOptionTitle,
			AffirmativeValueTitle: domain.CruiseShipYesValueTitle,
			DependentTitles: []string{
				domain.ShipArrivalOptionTitle,
				domain.ShipDepartureOptionTitle,
			},
		},
	}
}

// dependency привязка правила к конкретным опциям продукта
type dependency struct {
	controllerID  int64
	affirmativeID string // пусто, если управляющей опции или значения нет
}

// compile сопоставляет правила с опциями продукта: для каждой зависимой опции
// возвращает управляющую. Если управляющей опции или утвердительного значения нет,
// зависимые опции остаются скрытыми.
func compile(rules []DependencyRule, options []domain.ProductOption) map[int64]dependency {
	deps := make(map[int64]dependency)

	for _, rule := range rules {
		var dep dependency
		for i := range options {
			if options[i].Title != rule.ControllerTitle {
				continue
			}
			dep.controllerID = options[i].ID
			if v, ok := options[i].ValueByTitle(rule.AffirmativeValueTitle); ok {
				dep.affirmativeID = formatID(v.ID)
			}
			break
		}

		for _, title := range rule.DependentTitles {
			for i := range options {
				if options[i].Title == title && options[i].ID != dep.controllerID {
					deps[options[i].ID] = dep
				}
			}
		}
	}

	return deps
}
