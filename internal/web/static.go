package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"ProductAPI/pkg/kit"
)

const (
	homeDocument = "index.html"
	notFoundBody = "<h1>404 - Page Not Found</h1>"
)

var ErrNotDir = errors.New("static dir is not a directory")

//go:embed public
var bundled embed.FS

// Assets returns the static asset tree. An empty dir selects the assets
// compiled into the binary.
func Assets(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(bundled, "public")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}
	return os.DirFS(dir), nil
}

// Static serves files from an asset tree verbatim. It never lists
// directories and hides dotfiles.
type Static struct {
	fsys fs.FS
}

func NewStatic(fsys fs.FS) *Static {
	return &Static{fsys: fsys}
}

// Home serves the home document. A missing home document is a deployment
// fault, not a missing page, so it is reported as an error.
func (s *Static) Home(w http.ResponseWriter, r *http.Request) error {
	return s.serve(w, r, homeDocument)
}

// Fallback serves the file named by the request path when there is one and
// answers everything else with the not-found page.
func (s *Static) Fallback(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		NotFound(w, r)
		return nil
	}

	name, ok := s.resolve(r.URL.Path)
	if !ok {
		NotFound(w, r)
		return nil
	}
	return s.serve(w, r, name)
}

// NotFound writes the HTML not-found page.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusNotFound, notFoundBody)
}

// resolve maps a URL path to a regular file in the tree.
func (s *Static) resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) || hidden(name) {
		return "", false
	}

	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		name = path.Join(name, homeDocument)
		info, err = fs.Stat(s.fsys, name)
		if err != nil {
			return "", false
		}
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

func hidden(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}

func (s *Static) serve(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := s.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		content = bytes.NewReader(b)
	}

	http.ServeContent(w, r, path.Base(name), info.ModTime(), content)
	return nil
}
