package qr

import (
	"bytes"
	"net/url"
	"testing"
)

func TestShareURL(t *testing.T) {
	tests := []struct {
		base  string
		table string
		want  string
	}{
		{"http://localhost:8080", "5", "http://localhost:8080?table=5"},
		{"https://menu.example.com/app", "12", "https://menu.example.com/app?table=12"},
		{"http://localhost:8080?lang=ru", "3", "http://localhost:8080?lang=ru&table=3"},
		{"http://localhost:8080", "terrace 2", "http://localhost:8080?table=terrace+2"},
	}
	for _, tt := range tests {
		got, err := ShareURL(tt.base, tt.table)
		if err != nil {
			t.Errorf("ShareURL(%q, %q): %v", tt.base, tt.table, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ShareURL(%q, %q) = %q, want %q", tt.base, tt.table, got, tt.want)
		}
		u, err := url.Parse(got)
		if err != nil {
			t.Errorf("share url %q does not parse: %v", got, err)
			continue
		}
		if u.Query().Get("table") != tt.table {
			t.Errorf("share url %q: table param = %q, want %q", got, u.Query().Get("table"), tt.table)
		}
	}
}

func TestPNG(t *testing.T) {
	share, err := ShareURL("http://localhost:8080", "7")
	if err != nil {
		t.Fatalf("ShareURL: %v", err)
	}
	png, err := PNG(share, 256)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a PNG, first bytes: %x", png[:8])
	}
}
