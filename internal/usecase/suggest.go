package usecase

import (
	"context"
	"sync"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// Suggest asks the text-suggestion service for a menu-item
// description. At most one request per (item, language) pair may be
// outstanding; a duplicate concurrent request is refused immediately
// with ErrSuggestionInFlight so the editor never fires the same field
// twice.
type Suggest struct {
	menu MenuRepo
	svc  Suggester

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSuggest(menu MenuRepo, svc Suggester) *Suggest {
	return &Suggest{menu: menu, svc: svc, inflight: make(map[string]struct{})}
}

// Execute returns a suggested description for the item in the given
// language, or "" when the service has nothing to offer. Service
// failures degrade to "" as well: existing text is left untouched and
// nothing here is fatal.
func (uc *Suggest) Execute(ctx context.Context, itemID string, lang entity.Language) (string, error) {
	item, ok, err := uc.menu.FindItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUnknownItem
	}

	key := itemID + ":" + string(lang)
	uc.mu.Lock()
	if _, busy := uc.inflight[key]; busy {
		uc.mu.Unlock()
		return "", ErrSuggestionInFlight
	}
	uc.inflight[key] = struct{}{}
	uc.mu.Unlock()
	defer func() {
		uc.mu.Lock()
		delete(uc.inflight, key)
		uc.mu.Unlock()
	}()

	categoryName := ""
	if cat, ok, err := uc.menu.FindCategory(ctx, item.Category); err == nil && ok {
		categoryName = cat.Name.Localize(lang)
	}

	text, err := uc.svc.Suggest(ctx, item.Name.Localize(lang), categoryName, lang)
	if err != nil {
		// No suggestion available; the caller keeps what it has.
		return "", nil
	}
	return text, nil
}
