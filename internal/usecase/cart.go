package usecase

// Cart is a customer's transient selection: menu item id to requested
// quantity. It lives only for the browsing session and is discarded
// once converted into an order.
type Cart map[string]int

// Add increments the quantity for a menu item.
func (c Cart) Add(itemID string) {
	c[itemID]++
}

// Remove decrements the quantity for a menu item. A quantity reaching
// zero removes the entry rather than storing zero.
func (c Cart) Remove(itemID string) {
	q, ok := c[itemID]
	if !ok {
		return
	}
	if q > 1 {
		c[itemID] = q - 1
		return
	}
	delete(c, itemID)
}

// Count is the total number of units across all entries.
func (c Cart) Count() int {
	n := 0
	for _, q := range c {
		n += q
	}
	return n
}
