package cart

import "github.com/SpongeBUG/tierra-collectives/internal/domain"

// Action is the closed set of cart mutations. Every mutation funnels through
// the reducer's exhaustive switch, so a new action kind cannot be added
// without handling it there.
type Action interface {
	isAction()
}

// AddItem appends a new line, or merges quantity into an existing line with
// the same variant id.
type AddItem struct {
	Item domain.CartItem
}

// UpdateItem sets the quantity of the line with the given id. A quantity of
// zero or less removes the line instead.
type UpdateItem struct {
	ID       string
	Quantity int
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
type RemoveItem struct {
	ID string
}

// ClearCart empties the item list.
type ClearCart struct{}

func (AddItem) isAction()    {}
func (UpdateItem) isAction() {}
func (RemoveItem) isAction() {}
func (ClearCart) isAction()  {}

// reduce applies one action to a cart and returns the next state with totals
// recomputed. It never mutates its input.
func reduce(state domain.Cart, action Action) domain.Cart {
	next := state.Clone()

	switch a := action.(type) {
	case AddItem:
		if i := next.FindVariantIndex(a.Item.VariantID); i >= 0 {
			next.Items[i].Quantity += a.Item.Quantity
		} else {
			next.Items = append(next.Items, a.Item)
		}

	case UpdateItem:
		if a.Quantity <= 0 {
			return reduce(state, RemoveItem{ID: a.ID})
		}
		if i := next.FindItemIndex(a.ID); i >= 0 {
			next.Items[i].Quantity = a.Quantity
		}

	case RemoveItem:
		if i := next.FindItemIndex(a.ID); i >= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}

	case ClearCart:
		next.Items = []domain.CartItem{}
	}

	next.Recalculate()
	return next
}
