package cart

import (
	"errors"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Item is a catalog product copied into the cart at the moment it was added,
// plus the chosen quantity. A product appears at most once; adding it again
// bumps the quantity instead.
type Item struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// State holds the cart line items in insertion order. The total is never
// stored; it is derived from the items on every read so it cannot drift.
type State struct {
	Items []Item `json:"items"`
}

type Snapshot struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// Add merges it into the cart under it.ProductID. A non-positive qty is
// rejected without touching the state.
func (s *State) Add(it Item, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	for i := range s.Items {
		if s.Items[i].ProductID == it.ProductID {
			s.Items[i].Quantity += qty
			return nil
		}
	}

	it.Quantity = qty
	s.Items = append(s.Items, it)
	return nil
}

// Remove deletes the item with the given product id. Absent ids are a no-op.
func (s *State) Remove(id string) {
	for i := range s.Items {
		if s.Items[i].ProductID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the absolute quantity of an item. A quantity of zero or
// less removes the item, matching what a shopper means by "none of these".
func (s *State) SetQuantity(id string, qty int) {
	if qty <= 0 {
		s.Remove(id)
		return
	}

	for i := range s.Items {
		if s.Items[i].ProductID == id {
			s.Items[i].Quantity = qty
			return
		}
	}
}

func (s *State) Clear() {
	s.Items = nil
}

func (s State) Total() int {
	var tot int
	for _, it := range s.Items {
		tot += it.Price * it.Quantity
	}
	return tot
}

func (s State) Snapshot() Snapshot {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return Snapshot{Items: items, Total: s.Total()}
}
