package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// countriesTTL время жизни кэша списка стран
const countriesTTL = time.Hour

type countryCache struct {
	mu       sync.Mutex
	list     []domain.Country
	loadedAt time.Time
}

// Countries возвращает список стран магазина из кэша, при истечении TTL загружает заново.
// Если магазин недоступен, отдается последний загруженный список.
func (s *Service) Countries(ctx context.Context) ([]domain.Country, error) {
	c := &s.countries
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.list != nil && s.now().Sub(c.loadedAt) < countriesTTL {
		return c.list, nil
	}

	list, err := s.catalog.ListCountries(ctx)
	if err != nil {
		if c.list != nil {
			s.logger.Warn("Countries: refresh failed, serving cached list of %d: %v", len(c.list), err)
			return c.list, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	c.list = list
	c.loadedAt = s.now()
	s.logger.Info("Countries: loaded %d countries", len(list))
	return list, nil
}
