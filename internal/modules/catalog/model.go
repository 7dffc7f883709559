package catalog

// Product is one row of the storefront catalog. Products are ephemeral: the
// whole set is rebuilt on every sheet fetch. The ID is derived from name and
// shop so it stays stable across reloads of the same sheet.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Shop     string `json:"shop"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url,omitempty"`
	Fee      int64  `json:"fee"`
	Category string `json:"category,omitempty"`
	Promo    string `json:"promo,omitempty"`
	Stock    int64  `json:"stock"`
}
