package cart

// Line is one aggregated cart entry, keyed by product name.
type Line struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}

// Summary is the rendered cart: lines sorted by name plus totals. DrawerOpen
// is false exactly when the cart is empty; an empty cart never keeps the
// drawer open.
type Summary struct {
	Lines         []Line `json:"lines"`
	Total         int64  `json:"total"`
	TotalQuantity int64  `json:"total_quantity"`
	DrawerOpen    bool   `json:"drawer_open"`
}
