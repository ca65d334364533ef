package sessions

import "context"

// visitorCartStore хранилище идентификатора корзины одного посетителя
type visitorCartStore struct {
	backend   CartIDBackend
	visitorID string
}

func (s *visitorCartStore) Load(ctx context.Context) (string, error) {
	return s.backend.Load(ctx, s.visitorID)
}

func (s *visitorCartStore) Save(ctx context.Context, cartID string) error {
	return s.backend.Save(ctx, s.visitorID, cartID)
}

func (s *visitorCartStore) Clear(ctx context.Context) error {
	return s.backend.Clear(ctx, s.visitorID)
}
