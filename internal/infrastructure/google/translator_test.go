package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingobot/internal/domain"
)

func TestTranslator_Translate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate_a/single" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("sl") != "auto" || q.Get("tl") != "zh-CN" || q.Get("q") != "Hello. How are you?" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`[[["你好。","Hello.",null,null,10],["你好吗？","How are you?",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	tr := NewTranslator(srv.URL, srv.Client())
	got, err := tr.Translate(context.Background(), "Hello. How are you?", "", "zh-cn")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "你好。你好吗？" {
		t.Errorf("unexpected translation %q", got)
	}
}

func TestTranslator_Unsupported(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("http://127.0.0.1:0", nil)
	for _, tc := range [][2]string{{"auto", "xx"}, {"qq", "es"}} {
		_, err := tr.Translate(context.Background(), "Hello", tc[0], tc[1])
		if !errors.Is(err, domain.ErrUnsupportedLanguage) {
			t.Errorf("%v: expected ErrUnsupportedLanguage, got %v", tc, err)
		}
	}
}

func TestTranslator_SameLanguage(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("http://127.0.0.1:0", nil)
	got, err := tr.Translate(context.Background(), "Hola", "es", "es")
	if err != nil || got != "Hola" {
		t.Errorf("expected passthrough, got %q, %v", got, err)
	}
}

func TestTranslator_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewTranslator(srv.URL, nil).Translate(context.Background(), "Hello", "en", "es")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body    string
		want    string
		wantErr bool
	}{
		{`[[["Hola","Hello",null,null,10]],null,"en"]`, "Hola", false},
		{`[[[null,"x"],["b","y"]]]`, "b", false},
		{`[]`, "", true},
		{`{"error":"x"}`, "", true},
		{`[null]`, "", false},
	}
	for _, tt := range tests {
		got, err := parseSentences([]byte(tt.body))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: unexpected error %v", tt.body, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	options, err := NewTranslator("", nil).Languages(context.Background())
	if err != nil {
		t.Fatalf("Languages failed: %v", err)
	}
	if len(options) != len(codes) {
		t.Fatalf("expected %d languages, got %d", len(codes), len(options))
	}

	names := make(map[string]string, len(options))
	for _, o := range options {
		if o.Name == "" {
			t.Errorf("%s has no name", o.Code)
		}
		names[o.Code] = o.Name
	}
	want := map[string]string{
		"es":       "Spanish",
		"fr":       "French",
		"zh-CN":    "Chinese (Simplified)",
		"mni-Mtei": "Meiteilon (Manipuri)",
	}
	for code, name := range want {
		if names[code] != name {
			t.Errorf("%s: got %q, want %q", code, names[code], name)
		}
	}
}
