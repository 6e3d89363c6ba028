package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	r := setupRouter(t, nil, nil)

	w := get(t, r, "/healthz")
	id := w.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", id, err)
	}

	want := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, want)
	if got := do(r, req).Header().Get(requestIDHeader); got != want {
		t.Errorf("request id = %q, want %q", got, want)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	if got := do(r, req).Header().Get(requestIDHeader); got == "not-a-uuid" {
		t.Error("invalid incoming ids should be replaced")
	}
}

func TestNegotiateEncoding(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"identity", ""},
		{"gzip", "gzip"},
		{"gzip, deflate, br", "br"},
		{"br;q=0, gzip", "gzip"},
		{"GZIP;q=0.5", "gzip"},
		{"gzip;q=0", ""},
		{"deflate", ""},
	}

	for _, tt := range tests {
		if got := negotiateEncoding(tt.header); got != tt.want {
			t.Errorf("negotiateEncoding(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestCompression(t *testing.T) {
	r := setupRouter(t, nil, nil)

	decoders := map[string]func(io.Reader) (io.Reader, error){
		"br": func(r io.Reader) (io.Reader, error) { return brotli.NewReader(r), nil },
		"gzip": func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		},
	}

	for encoding, decode := range decoders {
		t.Run(encoding, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/skills", nil)
			req.Header.Set("Accept-Encoding", encoding)
			w := do(r, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if got := w.Header().Get("Content-Encoding"); got != encoding {
				t.Fatalf("Content-Encoding = %q, want %q", got, encoding)
			}
			if !strings.Contains(w.Header().Get("Vary"), "Accept-Encoding") {
				t.Error("missing Vary header")
			}

			dr, err := decode(w.Body)
			if err != nil {
				t.Fatalf("decoder: %v", err)
			}
			body, err := io.ReadAll(dr)
			if err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if !strings.Contains(string(body), "<h1>Technical Skills</h1>") {
				t.Error("decoded body does not contain the page")
			}
		})
	}
}

func TestCompressionSkipsResume(t *testing.T) {
	r := setupRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/resume.pdf", nil)
	req.Header.Set("Accept-Encoding", "br, gzip")
	w := do(r, req)

	if enc := w.Header().Get("Content-Encoding"); enc != "" {
		t.Errorf("resume should not be re-encoded, got %q", enc)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Error("resume body should be served as-is")
	}
}

func TestCompressionSkipsRangeRequests(t *testing.T) {
	r := setupRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil)
	req.Header.Set("Range", "bytes=0-9")
	req.Header.Set("Accept-Encoding", "gzip")
	w := do(r, req)

	if w.Code != http.StatusPartialContent {
		t.Fatalf("expected 206, got %d", w.Code)
	}
	if enc := w.Header().Get("Content-Encoding"); enc != "" {
		t.Errorf("partial content should not be encoded, got %q", enc)
	}
	if cr := w.Header().Get("Content-Range"); !strings.HasPrefix(cr, "bytes 0-9/") {
		t.Errorf("Content-Range = %q", cr)
	}
	if got := w.Body.String(); got != ":root {\n  " {
		t.Errorf("body = %q, want the first ten identity bytes", got)
	}
}

func TestCompressionSkipsStaticPDF(t *testing.T) {
	r := setupRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/static/"+resumeAsset, nil)
	req.Header.Set("Accept-Encoding", "br, gzip")
	w := do(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if enc := w.Header().Get("Content-Encoding"); enc != "" {
		t.Errorf("PDF should not be re-encoded, got %q", enc)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Error("PDF body should be served as-is")
	}
}

func TestSkipCompression(t *testing.T) {
	tests := []struct {
		method string
		path   string
		rng    string
		want   bool
	}{
		{http.MethodGet, "/", "", false},
		{http.MethodGet, "/static/css/site.css", "", false},
		{http.MethodGet, "/static/css/site.css", "bytes=0-9", true},
		{http.MethodGet, "/static/Steven_CV.pdf", "", true},
		{http.MethodGet, "/static/Other.PDF", "", true},
		{http.MethodGet, "/resume", "", true},
		{http.MethodGet, "/healthz", "", true},
		{http.MethodHead, "/skills", "", true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.rng != "" {
			req.Header.Set("Range", tt.rng)
		}
		if got := skipCompression(req); got != tt.want {
			t.Errorf("skipCompression(%s %s range=%q) = %v, want %v", tt.method, tt.path, tt.rng, got, tt.want)
		}
	}
}
