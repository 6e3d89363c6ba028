package main

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/StxvenDev/portfolio/internal/content"
	"github.com/StxvenDev/portfolio/internal/markup"
)

// exportRoutes lists every page route that has a static rendering.
func exportRoutes() []string {
	routes := []string{"/", "/certifications", "/skills", "/projects"}
	for _, p := range content.ProjectSummaries() {
		routes = append(routes, "/projects/"+p.Slug)
	}
	return routes
}

// exportSite renders every page through h and writes it beneath outDir as
// <route>/index.html, then copies the static assets and the resume. It
// returns the number of pages written.
func exportSite(h http.Handler, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	routes := exportRoutes()
	for _, route := range routes {
		body, err := renderRoute(h, route)
		if err != nil {
			return 0, err
		}

		dest := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(route, "/")), "index.html")
		if err := writeFile(dest, markup.Pretty(body)); err != nil {
			return 0, err
		}
	}

	resume, err := renderRoute(h, "/resume.pdf")
	if err != nil {
		return 0, err
	}
	if err := writeFile(filepath.Join(outDir, "resume.pdf"), resume); err != nil {
		return 0, err
	}

	if err := copyStatic(filepath.Join(outDir, "static")); err != nil {
		return 0, err
	}

	log.Printf("Exported %d pages to %s", len(routes), outDir)
	return len(routes), nil
}

func renderRoute(h http.Handler, route string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, route, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("rendering %s: status %d", route, rec.Code)
	}
	return rec.Body.Bytes(), nil
}

func copyStatic(dest string) error {
	assets := staticFiles()
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Base(p) == resumeAsset {
			return nil
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", p, err)
		}
		return writeFile(filepath.Join(dest, filepath.FromSlash(p)), data)
	})
}

func writeFile(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
