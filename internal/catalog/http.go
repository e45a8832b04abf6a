package catalog

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ProductAPI/pkg/kit"
)

// ProductNotFoundMessage is the plain-text body of a failed lookup.
const ProductNotFoundMessage = "Product Does Not Exist"

type Server struct {
	Catalog *Catalog
	Log     *zap.Logger
}

// Routes registers the product API and probe endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	r.Get("/api/products", kit.Handle(s.Log, s.list))
	r.Get("/api/products/{productID}", kit.Handle(s.Log, s.get))
	r.Get("/api/v1/query", kit.Handle(s.Log, s.query))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Catalog == nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed: catalog not loaded")
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) error {
	return kit.WriteJSON(w, http.StatusOK, s.Catalog.Summaries())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) error {
	// chi matches on the escaped path when there is one
	raw, err := url.PathUnescape(chi.URLParam(r, "productID"))
	if err != nil {
		kit.WriteText(w, http.StatusNotFound, ProductNotFoundMessage)
		return nil
	}

	id, ok := ParseID(raw)
	if !ok {
		kit.WriteText(w, http.StatusNotFound, ProductNotFoundMessage)
		return nil
	}

	p, ok := s.Catalog.Find(id)
	if !ok {
		kit.WriteText(w, http.StatusNotFound, ProductNotFoundMessage)
		return nil
	}
	return kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) query(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	found := s.Catalog.Search(q.Get("search"), ParseLimitValues(q["limit"]))
	return kit.WriteJSON(w, http.StatusOK, found)
}
