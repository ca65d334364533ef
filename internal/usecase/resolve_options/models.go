package resolve_options

import "github.com/m04kA/SMC-TourBooking/internal/domain"

// DependencyRule правило: зависимые опции видимы только при утвердительном ответе на управляющую
type DependencyRule struct {
	ControllerTitle       string   // заголовок управляющей опции
	AffirmativeValueTitle string   // заголовок значения, включающего зависимые опции
	DependentTitles       []string // заголовки зависимых опций
}

// OptionState видимость и заполненность одной опции
type OptionState struct {
	OptionID int64
	Title    string
	Visible  bool
	Required bool // обязательна с учетом видимости
	Answered bool
}

// MissingOption видимая обязательная опция без ответа
type MissingOption struct {
	OptionID int64
	Title    string
}

// Result результат разрешения зависимостей
type Result struct {
	States  []OptionState           // в порядке опций продукта
	Missing []MissingOption         // пусто, если отправка разрешена
	Payload []domain.CartItemOption // только отвеченные видимые опции
}

// Complete возвращает true, если все видимые обязательные опции заполнены
func (r *Result) Complete() bool {
	return len(r.Missing) == 0
}

// MissingTitles заголовки незаполненных обязательных опций
func (r *Result) MissingTitles() []string {
	titles := make([]string, 0, len(r.Missing))
	for _, m := range r.Missing {
		titles = append(titles, m.Title)
	}
	return titles
}

// IsVisible возвращает видимость опции
func (r *Result) IsVisible(optionID int64) bool {
	for _, s := range r.States {
		if s.OptionID == optionID {
			return s.Visible
		}
	}
	return false
}
