// Package catalog holds the fixed list of artworks for sale and the customer
// reviews shown alongside them. A Catalog is read-only once built.
package catalog

// Catalog is an ordered, immutable set of products and reviews.
type Catalog struct {
	products []Product
	index    map[int]int
	reviews  []Review
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by identifier.
func (c *Catalog) Get(id int) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Featured returns up to n products from the head of the catalog.
func (c *Catalog) Featured(n int) []Product {
	products := c.Products()
	if n < len(products) {
		products = products[:n]
	}
	return products
}

// Reviews returns every review in catalog order.
func (c *Catalog) Reviews() []Review {
	if c == nil {
		return nil
	}
	out := make([]Review, len(c.reviews))
	copy(out, c.reviews)
	return out
}

// ReviewsFor returns the reviews attached to a single product.
func (c *Catalog) ReviewsFor(id int) []Review {
	if c == nil {
		return nil
	}
	var out []Review
	for _, r := range c.reviews {
		if r.ProductID == id {
			out = append(out, r)
		}
	}
	return out
}
