package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/blob"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

// MenuStore holds the menu/restaurant configuration blob and serves
// as the read-only catalog for order creation.
type MenuStore struct {
	blob blob.Blob
	log  *slog.Logger

	mu   sync.Mutex
	data entity.Restaurant
}

// NewMenuStore loads the configuration, seeding defaults on first run
// or when the blob is unreadable.
func NewMenuStore(ctx context.Context, b blob.Blob, log *slog.Logger) (*MenuStore, error) {
	s := &MenuStore{blob: b, log: log, data: DefaultRestaurant()}

	data, ok, err := b.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if !ok {
		if err := s.commit(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	var r entity.Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		log.Warn("menu blob unreadable, using defaults", "error", err)
		return s, nil
	}
	s.data = r
	return s, nil
}

func (s *MenuStore) Restaurant(_ context.Context) (entity.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *MenuStore) Replace(ctx context.Context, r entity.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data
	s.data = r
	if err := s.commit(ctx); err != nil {
		s.data = prev
		return err
	}
	return nil
}

// AddTable registers a new table label, keeping the list in numeric
// order like the QR share center expects.
func (s *MenuStore) AddTable(ctx context.Context, label string) (entity.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.HasTable(label) {
		return entity.Restaurant{}, fmt.Errorf("table %s: %w", label, usecase.ErrDuplicateTable)
	}
	prev := s.data.Tables
	tables := append(append([]string(nil), prev...), label)
	sort.Slice(tables, func(i, j int) bool {
		a, aerr := strconv.Atoi(tables[i])
		b, berr := strconv.Atoi(tables[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr != berr {
			return aerr == nil // numeric labels first
		}
		return tables[i] < tables[j]
	})
	s.data.Tables = tables
	if err := s.commit(ctx); err != nil {
		s.data.Tables = prev
		return entity.Restaurant{}, err
	}
	return s.data, nil
}

func (s *MenuStore) FindItem(_ context.Context, id string) (entity.MenuItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.data.FindItem(id)
	return item, ok, nil
}

func (s *MenuStore) FindCategory(_ context.Context, id string) (entity.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.data.FindCategory(id)
	return cat, ok, nil
}

// commit persists the whole blob. Callers hold s.mu.
func (s *MenuStore) commit(ctx context.Context) error {
	data, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshal menu: %w", err)
	}
	if err := s.blob.Store(ctx, data); err != nil {
		return fmt.Errorf("commit menu: %w", err)
	}
	return nil
}

// DefaultRestaurant is the seed configuration for a fresh deployment:
// one sample item, two categories and three tables.
func DefaultRestaurant() entity.Restaurant {
	return entity.Restaurant{
		Name:        entity.Translatable{Uz: "Lumière Bistro", Ru: "Бистро Люмьер", En: "Lumière Bistro"},
		Description: entity.Translatable{Uz: "Sifatli va mazali taomlar", Ru: "Качественная и вкусная еда", En: "Quality and delicious food"},
		Items: []entity.MenuItem{
			{
				ID:              "1",
				Name:            entity.Translatable{Uz: "Klassik Avokado Toast", Ru: "Классический тост с авокадо", En: "Classic Avocado Toast"},
				Description:     entity.Translatable{Uz: "Avokado va tuxumli mazali nonushta", Ru: "Вкусный завтрак с авокадо и яйцом", En: "Delicious breakfast with avocado and egg"},
				Price:           45000,
				Category:        "breakfast",
				IsAvailable:     true,
				PrepTimeMinutes: 15,
			},
		},
		Categories: []entity.Category{
			{ID: "breakfast", Name: entity.Translatable{Uz: "Nonushta", Ru: "Завтрак", En: "Breakfast"}},
			{ID: "lunch", Name: entity.Translatable{Uz: "Tushlik", Ru: "Обед", En: "Lunch"}},
		},
		Theme: entity.MenuTheme{
			PrimaryColor: "#4f46e5",
			AccentColor:  "#f59e0b",
			FontFamily:   "sans",
			Layout:       "list",
		},
		Tables: []string{"1", "2", "3"},
	}
}

var _ usecase.MenuRepo = (*MenuStore)(nil)
