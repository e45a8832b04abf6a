package catalog

// Product is a single catalog record as stored and as returned by lookups.
type Product struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Image string  `json:"image" yaml:"image"`
	Price float64 `json:"price" yaml:"price"`
	Desc  string  `json:"desc" yaml:"desc"`
}

// Summary is the listing projection of a Product.
type Summary struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

func (p Product) Summary() Summary {
	return Summary{
		ID:    p.ID,
		Name:  p.Name,
		Image: p.Image,
		Price: p.Price,
	}
}
