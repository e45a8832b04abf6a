package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/products.yaml
var bundled []byte

var (
	ErrDuplicateID  = errors.New("duplicate product id")
	ErrInvalidPrice = errors.New("invalid product price")
)

// Catalog is the read-only product collection. It is built once and shared by
// all requests without locking; nothing mutates it after construction.
type Catalog struct {
	products []Product
}

type document struct {
	Products []Product `yaml:"products"`
}

// New builds a catalog from products, keeping their order.
func New(products []Product) (*Catalog, error) {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, fmt.Errorf("%w: id=%d", ErrInvalidPrice, p.ID)
		}
	}

	return &Catalog{products: slices.Clone(products)}, nil
}

// Load decodes a YAML catalog document with a top-level "products" list.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return New(doc.Products)
}

// Bundled loads the catalog compiled into the binary.
func Bundled() (*Catalog, error) {
	return Load(bundled)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Summary())
	}
	return out
}

// Find returns the first product with the given id.
func (c *Catalog) Find(id int) (Product, bool) {
	i := slices.IndexFunc(c.products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return Product{}, false
	}
	return c.products[i], true
}

// Search keeps products whose name starts with term, ignoring case, then
// applies limit to the filtered sequence. An empty term keeps everything.
// The result is never nil.
func (c *Catalog) Search(term string, limit Limit) []Product {
	out := make([]Product, 0, len(c.products))

	if term == "" {
		out = append(out, c.products...)
	} else {
		lower := cases.Lower(language.Und)
		prefix := lower.String(term)
		for _, p := range c.products {
			if strings.HasPrefix(lower.String(p.Name), prefix) {
				out = append(out, p)
			}
		}
	}

	return out[:limit.Take(len(out))]
}
