package inventory

import (
	"cmp"
	"slices"
)

// Store keeps products keyed by external code.
type Store struct {
	products map[string]Product
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{products: make(map[string]Product)}
}

// Insert stores p under p.ExternalCode, replacing whatever was there.
func (s *Store) Insert(p Product) {
	s.products[p.ExternalCode] = p
}

// Lookup returns the product stored under code.
func (s *Store) Lookup(code string) (Product, bool) {
	p, ok := s.products[code]
	return p, ok
}

// Remove deletes the entry for code. Missing codes are ignored.
func (s *Store) Remove(code string) {
	delete(s.products, code)
}

// Rekey moves the product at oldCode to newCode and updates its ExternalCode.
// A different product already stored under newCode is overwritten.
func (s *Store) Rekey(oldCode, newCode string) (Product, bool) {
	p, ok := s.products[oldCode]
	if !ok {
		return Product{}, false
	}
	s.Remove(oldCode)
	p.ExternalCode = newCode
	s.Insert(p)
	return p, true
}

// List returns a copy of every product ordered by external code.
func (s *Store) List() []Product {
	result := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b Product) int {
		return cmp.Compare(a.ExternalCode, b.ExternalCode)
	})
	return result
}

// Len reports how many products are stored.
func (s *Store) Len() int {
	return len(s.products)
}
