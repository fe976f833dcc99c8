package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eatwise/backend/internal/domain"
)

// Local candidates are over-fetched by this factor before scoring so
// the scorer has room to reorder the store's name-ordered pre-filter.
const localFetchFactor = 3

// FoodServiceConfig holds configuration for the food service
type FoodServiceConfig struct {
	DefaultLimit int
	MaxLimit     int
	CacheTTL     time.Duration
}

// FoodService merges the local catalog and the external food database
// into one ranked search surface, and imports external hits into the
// catalog as they are discovered.
type FoodService struct {
	catalog      domain.FoodRepository
	external     domain.ExternalFoodSource
	cache        domain.FoodCache
	defaultLimit int
	maxLimit     int
	cacheTTL     time.Duration
}

// scoredFood pairs a catalog item with its relevance for one query.
// Lives only for the duration of a single search call.
type scoredFood struct {
	item  domain.FoodItem
	score int
}

// NewFoodService creates a new food service with dependencies
func NewFoodService(
	catalog domain.FoodRepository,
	external domain.ExternalFoodSource,
	cache domain.FoodCache,
	config FoodServiceConfig,
) *FoodService {
	defaultLimit := config.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 20
	}

	maxLimit := config.MaxLimit
	if maxLimit <= 0 {
		maxLimit = 100
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &FoodService{
		catalog:      catalog,
		external:     external,
		cache:        cache,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		cacheTTL:     cacheTTL,
	}
}

// Search returns up to limit catalog items ranked by relevance for the
// query. The local catalog and the external database are consulted
// concurrently; external failures degrade to local-only results, while
// a catalog failure is fatal for the call. Relevant external hits are
// imported into the catalog as a side effect.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	query = strings.TrimSpace(query)
	if query == "" {
		items, err := s.catalog.ListDefault(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		return items, nil
	}

	terms := ExpandQuery(query)

	// The store only needs terms long enough to narrow the pre-filter
	var filterTerms []string
	for _, term := range terms {
		if len([]rune(term)) >= minSubstringTermLen {
			filterTerms = append(filterTerms, term)
		}
	}

	var locals []domain.FoodItem
	var externals []domain.ExternalFoodRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.catalog.Search(gctx, query, filterTerms, limit*localFetchFactor)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		locals = found
		return nil
	})
	g.Go(func() error {
		found, err := s.external.SearchByText(gctx, query, limit)
		if err != nil {
			// External outage must never fail the whole search
			log.Printf("[SEARCH] external source failed for %q: %v", query, err)
			return nil
		}
		externals = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scoredLocal := scoreLocal(locals, query)
	if len(scoredLocal) > limit {
		scoredLocal = scoredLocal[:limit]
	}

	scoredExternal := s.importExternal(ctx, externals, query)

	// Merge: locals first so an item known to both sources keeps the
	// score computed from its richer catalog data
	merged := make([]scoredFood, 0, len(scoredLocal)+len(scoredExternal))
	seen := make(map[string]bool)
	for _, sf := range append(scoredLocal, scoredExternal...) {
		if seen[sf.item.ID] {
			continue
		}
		seen[sf.item.ID] = true
		merged = append(merged, sf)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].score > merged[j].score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	results := make([]domain.FoodItem, len(merged))
	for i, sf := range merged {
		results[i] = sf.item
	}
	return results, nil
}

// scoreLocal scores catalog candidates, drops non-matches and orders
// the rest by descending relevance.
func scoreLocal(items []domain.FoodItem, query string) []scoredFood {
	scored := make([]scoredFood, 0, len(items))
	for _, item := range items {
		if sc := ScoreFood(item.Name, item.Brand, query); sc > 0 {
			scored = append(scored, scoredFood{item: item, score: sc})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

// importExternal scores external records, persists the relevant ones
// into the catalog and returns them as scored catalog items. Scoring
// happens before persistence so irrelevant external noise is never
// written. A failed import drops that one candidate and the rest
// continue; every attempt settles before the caller merges.
func (s *FoodService) importExternal(ctx context.Context, records []domain.ExternalFoodRecord, query string) []scoredFood {
	type scoredRecord struct {
		record domain.ExternalFoodRecord
		score  int
	}
	scored := make([]scoredRecord, 0, len(records))
	for _, rec := range records {
		if sc := ScoreFood(rec.Name, rec.Brand, query); sc > 0 {
			scored = append(scored, scoredRecord{record: rec, score: sc})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var resolved []scoredFood
	for _, sr := range scored {
		item, existed, err := s.resolveExternal(ctx, sr.record)
		if err != nil {
			log.Printf("[SEARCH] dropping external candidate %q: %v", sr.record.Name, err)
			continue
		}
		score := sr.score
		if existed {
			// The persisted row is the source of truth; its fields may
			// differ from the external payload
			score = ScoreFood(item.Name, item.Brand, query)
			if score == 0 {
				continue
			}
		}
		resolved = append(resolved, scoredFood{item: *item, score: score})
	}
	return resolved
}

// resolveExternal maps one external record onto a catalog row: the
// existing row when the barcode is already known, otherwise a fresh
// verified import. A concurrent duplicate insert resolves to the row
// that won the race.
func (s *FoodService) resolveExternal(ctx context.Context, rec domain.ExternalFoodRecord) (*domain.FoodItem, bool, error) {
	if rec.Barcode != "" {
		existing, err := s.catalog.FindByBarcode(ctx, rec.Barcode)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	item := newItemFromExternal(rec)
	if err := s.catalog.Insert(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateFood) && rec.Barcode != "" {
			existing, ferr := s.catalog.FindByBarcode(ctx, rec.Barcode)
			if ferr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}
	return item, false, nil
}

// GetByBarcode resolves a barcode to a catalog item, importing it from
// the external database on first sight. Fails with ErrFoodNotFound when
// neither source knows the barcode.
func (s *FoodService) GetByBarcode(ctx context.Context, barcode string) (*domain.FoodItem, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := "barcode:" + barcode
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			return cached, nil
		}
	}

	existing, err := s.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if existing != nil {
		s.cacheItem(ctx, cacheKey, existing)
		return existing, nil
	}

	record, err := s.external.LookupByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	item := newItemFromExternal(*record)
	if err := s.catalog.Insert(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateFood) {
			// Lost the import race; the winning row is authoritative
			if existing, ferr := s.catalog.FindByBarcode(ctx, barcode); ferr == nil && existing != nil {
				s.cacheItem(ctx, cacheKey, existing)
				return existing, nil
			}
		}
		// Still answer from the fetched record; only persistence failed
		log.Printf("[SEARCH] import of barcode %s failed: %v", barcode, err)
	}
	s.cacheItem(ctx, cacheKey, item)
	return item, nil
}

// Create stores a manual, unverified user submission in the catalog.
func (s *FoodService) Create(ctx context.Context, input *domain.NewFoodInput) (*domain.FoodItem, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrInvalidRequest
	}

	servingSize := input.ServingSize
	servingUnit := input.ServingUnit
	if servingSize <= 0 {
		servingSize = 100
	}
	if servingUnit == "" {
		servingUnit = "g"
	}

	item := &domain.FoodItem{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Brand:       strings.TrimSpace(input.Brand),
		Barcode:     strings.TrimSpace(input.Barcode),
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		Fiber:       input.Fiber,
		Sugar:       input.Sugar,
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Category:    input.Category,
		CreatedBy:   input.CreatedBy,
		Verified:    false,
		Source:      domain.SourceManual,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.catalog.Insert(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateFood) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return item, nil
}

// cacheItem stores a barcode lookup; cache failures are not surfaced.
func (s *FoodService) cacheItem(ctx context.Context, key string, item *domain.FoodItem) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, item, s.cacheTTL); err != nil {
		log.Printf("[SEARCH] cache set failed for %s: %v", key, err)
	}
}

// newItemFromExternal maps an external record into a verified catalog
// item with provenance recorded.
func newItemFromExternal(rec domain.ExternalFoodRecord) *domain.FoodItem {
	servingSize := rec.ServingSize
	servingUnit := rec.ServingUnit
	if servingSize <= 0 {
		servingSize = 100
	}
	if servingUnit == "" {
		servingUnit = "g"
	}

	return &domain.FoodItem{
		ID:          uuid.New().String(),
		Name:        rec.Name,
		Brand:       rec.Brand,
		Barcode:     rec.Barcode,
		Calories:    rec.Calories,
		Protein:     rec.Protein,
		Carbs:       rec.Carbs,
		Fats:        rec.Fats,
		Fiber:       rec.Fiber,
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Category:    rec.Category,
		ImageURL:    rec.ImageURL,
		Verified:    true,
		Source:      domain.SourceExternal,
		CreatedAt:   time.Now().UTC(),
	}
}
