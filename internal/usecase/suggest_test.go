package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// blockingSuggester parks every call until released.
type blockingSuggester struct {
	started chan struct{}
	release chan struct{}
	text    string
	err     error
}

func (s *blockingSuggester) Suggest(ctx context.Context, itemName, categoryName string, lang entity.Language) (string, error) {
	s.started <- struct{}{}
	select {
	case <-s.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return s.text, s.err
}

func TestSuggestSingleFlightPerItemAndLanguage(t *testing.T) {
	svc := &blockingSuggester{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
		text:    "A golden toast crowned with creamy avocado.",
	}
	uc := NewSuggest(testMenu(), svc)
	ctx := context.Background()

	type result struct {
		text string
		err  error
	}
	first := make(chan result, 1)
	go func() {
		text, err := uc.Execute(ctx, "itemA", entity.LangEn)
		first <- result{text, err}
	}()
	<-svc.started // first call is now in flight

	// same (item, language): refused immediately
	if _, err := uc.Execute(ctx, "itemA", entity.LangEn); !errors.Is(err, ErrSuggestionInFlight) {
		t.Fatalf("duplicate err = %v, want ErrSuggestionInFlight", err)
	}

	// a different language for the same item is its own slot
	go func() {
		_, _ = uc.Execute(ctx, "itemA", entity.LangRu)
	}()
	select {
	case <-svc.started:
	case <-time.After(time.Second):
		t.Fatal("request for another language was blocked by the gate")
	}

	close(svc.release)
	res := <-first
	if res.err != nil {
		t.Fatalf("first call err = %v", res.err)
	}
	if res.text != svc.text {
		t.Errorf("text = %q", res.text)
	}

	// gate released: the same pair works again
	svc2 := &blockingSuggester{started: make(chan struct{}, 1), release: make(chan struct{}), text: "again"}
	close(svc2.release)
	uc2 := NewSuggest(testMenu(), svc2)
	if _, err := uc2.Execute(ctx, "itemA", entity.LangEn); err != nil {
		t.Fatalf("post-release err = %v", err)
	}
}

type staticSuggester struct {
	text string
	err  error
}

func (s staticSuggester) Suggest(context.Context, string, string, entity.Language) (string, error) {
	return s.text, s.err
}

func TestSuggestUnknownItem(t *testing.T) {
	uc := NewSuggest(testMenu(), staticSuggester{})
	_, err := uc.Execute(context.Background(), "nope", entity.LangEn)
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("err = %v, want ErrUnknownItem", err)
	}
}

func TestSuggestServiceFailureDegradesToEmpty(t *testing.T) {
	uc := NewSuggest(testMenu(), staticSuggester{err: errors.New("upstream down")})
	text, err := uc.Execute(context.Background(), "itemA", entity.LangEn)
	if err != nil {
		t.Fatalf("err = %v, want nil (degraded)", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}
