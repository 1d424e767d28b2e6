// Package countries mediates between the UI and the REST Countries API.
// The service keeps two pieces of state: the full catalog from the last
// successful fetch and the currently displayed view after search/filter.
// A failed search or filter empties the view but never the catalog.
package countries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/countries-explorer/internal/client/api"
	"github.com/iudanet/countries-explorer/internal/models"
)

//go:generate moq -out api_mock.go . API

// API defines the remote country data source
type API interface {
	// All returns the full country list
	All(ctx context.Context) ([]models.Country, error)

	// ByName returns countries matching a partial name (case-insensitive)
	ByName(ctx context.Context, name string) ([]models.Country, error)

	// ByRegion returns countries belonging to region
	ByRegion(ctx context.Context, region string) ([]models.Country, error)

	// ByCode returns the single country with the given three-letter code
	ByCode(ctx context.Context, code string) (*models.Country, error)
}

// RegionAll is the selector sentinel meaning "no region filter"
const RegionAll = "All"

// ErrNoMatch indicates that a name search produced no countries
var ErrNoMatch = errors.New("no countries found")

// Service holds the country catalog and the current filtered view.
//
// Region filtering is deliberately asymmetric, matching the original
// explorer: FilterByRegion asks the API for region-scoped data, while a
// name search with an active region narrows the name results locally.
// The two can disagree if the API's region endpoint and the region field
// of a record disagree; see DESIGN.md before unifying.
type Service struct {
	apiClient API

	mu             sync.Mutex
	all            []models.Country
	displayed      []models.Country
	loading        bool
	lastErr        error
	searchTerm     string
	selectedRegion string

	// seq нумерует запросы: ответ устаревшего запроса отбрасывается,
	// чтобы медленный ответ не затер результат более нового
	seq uint64
}

// NewService creates a new country data service
func NewService(apiClient API) *Service {
	return &Service{
		apiClient: apiClient,
	}
}

// FetchAll загружает полный список стран
// При успехе заменяет и каталог, и отображаемый список
// При ошибке очищает оба и записывает общую ошибку загрузки
func (s *Service) FetchAll(ctx context.Context) error {
	seq := s.begin()

	data, err := s.apiClient.All(ctx)

	var result error
	s.apply(seq, func() {
		if err != nil {
			s.all = nil
			s.displayed = nil
			s.lastErr = fmt.Errorf("failed to fetch countries, please try again later: %w", err)
			result = s.lastErr
			return
		}
		s.all = data
		s.displayed = data
		s.lastErr = nil
	})

	return result
}

// FilterByRegion фильтрует отображаемый список по региону
// Пустой регион или "All" сбрасывает фильтр локально, без запроса к API
// Иначе запрашивает region-scoped данные у API (поведение оригинала)
func (s *Service) FilterByRegion(ctx context.Context, region string) error {
	if region == "" || region == RegionAll {
		s.mu.Lock()
		// Локальный сброс отменяет незавершенные запросы
		s.seq++
		s.loading = false
		s.selectedRegion = ""
		s.displayed = s.all
		s.lastErr = nil
		s.mu.Unlock()
		return nil
	}

	seq := s.begin()
	s.mu.Lock()
	s.selectedRegion = region
	s.mu.Unlock()

	data, err := s.apiClient.ByRegion(ctx, region)

	var result error
	s.apply(seq, func() {
		if err != nil {
			s.displayed = nil
			s.lastErr = fmt.Errorf("failed to fetch countries in %s, please try again later: %w", region, err)
			result = s.lastErr
			return
		}
		s.displayed = data
		s.lastErr = nil
	})

	return result
}

// Search ищет страны по имени
// Пустой (или пробельный) запрос восстанавливает отображаемый список:
// по активному региону, если он выбран, иначе полный каталог
// При активном регионе результаты поиска дополнительно сужаются локально
func (s *Service) Search(ctx context.Context, term string) error {
	s.mu.Lock()
	s.searchTerm = term
	region := s.selectedRegion
	s.mu.Unlock()

	if strings.TrimSpace(term) == "" {
		if region != "" {
			return s.FilterByRegion(ctx, region)
		}

		s.mu.Lock()
		s.seq++
		s.loading = false
		s.displayed = s.all
		s.lastErr = nil
		s.mu.Unlock()
		return nil
	}

	seq := s.begin()

	data, err := s.apiClient.ByName(ctx, term)
	if err == nil && region != "" {
		// Сужение по региону выполняется локально, case-insensitive
		narrowed := make([]models.Country, 0, len(data))
		for i := range data {
			if data[i].MatchesRegion(region) {
				narrowed = append(narrowed, data[i])
			}
		}
		data = narrowed
	}

	var result error
	s.apply(seq, func() {
		if err != nil || len(data) == 0 {
			if err != nil && !errors.Is(err, api.ErrNotFound) {
				slog.Debug("name search request failed", "term", term, "error", err)
			}
			// Любая неудача поиска показывается как "не найдено" с термом,
			// как в оригинале: API отвечает 404 на отсутствие совпадений
			s.displayed = nil
			s.lastErr = fmt.Errorf("%w matching %q", ErrNoMatch, term)
			result = s.lastErr
			return
		}
		s.displayed = data
		s.lastErr = nil
	})

	return result
}

// ByCode возвращает одну страну по трехбуквенному коду
// Состояние сервиса не меняется: это lookup для детального просмотра
func (s *Service) ByCode(ctx context.Context, code string) (*models.Country, error) {
	return s.apiClient.ByCode(ctx, code)
}

// All returns the full catalog from the last successful fetch
func (s *Service) All() []models.Country {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.all
}

// Displayed returns the current filtered view
func (s *Service) Displayed() []models.Country {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

// Loading reports whether a request is in flight
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed operation, or nil
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SearchTerm returns the current search term
func (s *Service) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// SelectedRegion returns the active region selector, empty when unset
func (s *Service) SelectedRegion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedRegion
}

// begin регистрирует новый запрос и возвращает его номер
func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	return s.seq
}

// apply выполняет fn под локом, если запрос seq все еще последний
// Ответы устаревших запросов отбрасываются
func (s *Service) apply(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.loading = false
	fn()
	return true
}
