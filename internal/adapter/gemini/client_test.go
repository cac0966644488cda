package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

func testClient(baseURL string) *Client {
	c := New("test-key", "test-model", 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.baseURL = baseURL
	return c
}

func TestSuggest(t *testing.T) {
	var gotPath string
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "  A golden toast.  "}}}},
			},
		})
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Suggest(context.Background(), "Avocado Toast", "Breakfast", entity.LangRu)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "A golden toast." {
		t.Errorf("suggestion = %q, want trimmed text", got)
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	for _, want := range []string{"Avocado Toast", "Breakfast", "Russian"} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("prompt missing %q: %q", want, gotPrompt)
		}
	}
}

func TestSuggestWithoutKey(t *testing.T) {
	c := New("", "test-model", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := c.Suggest(context.Background(), "Toast", "Breakfast", entity.LangEn)
	if err != nil || got != "" {
		t.Fatalf("keyless Suggest = %q, %v; want empty and nil", got, err)
	}
}

func TestSuggestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Suggest(context.Background(), "Toast", "Breakfast", entity.LangEn)
	if err == nil {
		t.Fatal("rejected request reported no error")
	}
	if got != "" {
		t.Fatalf("suggestion on error = %q, want empty", got)
	}
}

func TestSuggestNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Suggest(context.Background(), "Toast", "Breakfast", entity.LangEn)
	if err != nil || got != "" {
		t.Fatalf("empty candidates = %q, %v; want empty and nil", got, err)
	}
}
