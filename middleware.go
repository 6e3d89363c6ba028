package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every response with an id, reusing the caller's when it is
// a valid UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// compress encodes responses with brotli or gzip, whichever the client
// prefers to accept. PDFs are already compressed and health checks are too
// small to bother. Range requests pass through untouched since Content-Range
// counts identity bytes.
func compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipCompression(c.Request) {
			c.Next()
			return
		}

		encoding := negotiateEncoding(c.GetHeader("Accept-Encoding"))
		if encoding == "" {
			c.Next()
			return
		}

		cw := &compressWriter{ResponseWriter: c.Writer, encoding: encoding}
		c.Writer = cw
		defer cw.Close()
		c.Next()
	}
}

func skipCompression(r *http.Request) bool {
	path := r.URL.Path
	return strings.HasPrefix(path, "/resume") ||
		strings.HasPrefix(path, "/healthz") ||
		strings.HasSuffix(strings.ToLower(path), ".pdf") ||
		r.Method == http.MethodHead ||
		r.Header.Get("Range") != ""
}

// negotiateEncoding picks br over gzip. Quality values are not weighed
// beyond an explicit q=0.
func negotiateEncoding(header string) string {
	var gz bool
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.ReplaceAll(strings.TrimSpace(params), " ", "") == "q=0" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "br":
			return "br"
		case "gzip":
			gz = true
		}
	}
	if gz {
		return "gzip"
	}
	return ""
}

// compressWriter starts the encoder on the first body write so responses
// without a body (304, redirects) stay empty.
type compressWriter struct {
	gin.ResponseWriter
	encoding string
	enc      io.WriteCloser
}

func (w *compressWriter) WriteHeader(code int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if w.enc == nil {
		h := w.Header()
		h.Del("Content-Length")
		h.Set("Content-Encoding", w.encoding)
		h.Add("Vary", "Accept-Encoding")
		if w.encoding == "br" {
			w.enc = brotli.NewWriterLevel(w.ResponseWriter, brotli.DefaultCompression)
		} else {
			w.enc = gzip.NewWriter(w.ResponseWriter)
		}
	}
	return w.enc.Write(b)
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *compressWriter) Close() error {
	if w.enc == nil {
		return nil
	}
	return w.enc.Close()
}
