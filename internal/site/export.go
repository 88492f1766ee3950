package site

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/pkg/errors"
)

// Export renders every route through handler and writes the result under
// dir as <path>/index.html, plus 404.html and the static assets. The output
// can be served by any static file host. Detail pages whose key cannot be a
// single directory name are skipped with a warning; Catalog.Validate reports
// the same keys.
func Export(ctx context.Context, handler http.Handler, cat *content.Catalog, dir string) (written int, err error) {
	targets := map[string]string{}

	for _, route := range Routes(cat) {
		if err = ctx.Err(); err != nil {
			return written, err
		}

		target, ok := routeFile(dir, route)
		if !ok {
			log.Printf("Skipping %s: key cannot be exported as a static page", route)
			continue
		}
		if prev, dup := targets[target]; dup {
			err = errors.Errorf("routes %s and %s both export to %s", prev, route, target)
			return written, err
		}
		targets[target] = route

		err = exportPage(handler, route, http.StatusOK, target)
		if err != nil {
			return written, err
		}
		written++
	}

	err = exportPage(handler, "/404", http.StatusNotFound, filepath.Join(dir, "404.html"))
	if err != nil {
		return written, err
	}
	written++

	err = copyStatic(filepath.Join(dir, "static"))
	if err != nil {
		return written, err
	}

	log.Printf("Exported %d pages to %s", written, dir)
	return written, nil
}

// routeFile maps a route from Routes to its index.html under dir. Detail
// keys are unescaped so a static host finds the file for the decoded
// request path. It reports false for a key that is not a single safe
// directory name.
func routeFile(dir, route string) (string, bool) {
	if route == "/" {
		return filepath.Join(dir, "index.html"), true
	}

	section, escapedKey, detail := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	if !detail {
		return filepath.Join(dir, section, "index.html"), true
	}

	key, err := url.PathUnescape(escapedKey)
	if err != nil || !content.FileSafeKey(key) {
		return "", false
	}
	return filepath.Join(dir, section, key, "index.html"), true
}

func exportPage(handler http.Handler, route string, wantStatus int, target string) error {
	req := httptest.NewRequest(http.MethodGet, route, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		return errors.Errorf("rendering %s: got status %d, want %d", route, rec.Code, wantStatus)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", target)
	}
	if err := os.WriteFile(target, rec.Body.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", target)
	}
	return nil
}

func copyStatic(dir string) error {
	static := view.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return errors.Wrapf(err, "failed to read static asset %s", path)
		}
		return errors.Wrapf(os.WriteFile(target, data, 0644), "failed to write %s", target)
	})
}
