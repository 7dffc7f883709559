package catalog

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Column order of the sheet export. The header row is skipped; data rows are
// split on commas with no quoting support, so a comma inside a field corrupts
// that row. This is the documented contract of the upstream sheet, kept as-is.
const (
	colName = iota
	colShop
	colPrice
	colImage
	colFee
	colCategory
	colPromo
	colStock
)

// parseCSV turns the sheet body into products. Rows with an empty name are
// dropped; numeric fields default to 0 when blank or non-numeric.
func parseCSV(body string) []Product {
	lines := strings.Split(body, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header row
	}

	var products []Product
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cols := strings.Split(line, ",")

		name := field(cols, colName)
		if name == "" {
			continue
		}
		shop := field(cols, colShop)
		products = append(products, Product{
			ID:       productID(name, shop),
			Name:     name,
			Shop:     shop,
			Price:    parseAmount(field(cols, colPrice)),
			ImageURL: field(cols, colImage),
			Fee:      parseAmount(field(cols, colFee)),
			Category: field(cols, colCategory),
			Promo:    strings.ToLower(field(cols, colPromo)),
			Stock:    parseAmount(field(cols, colStock)),
		})
	}
	return products
}

// categoriesOf derives the distinct non-empty categories in first-seen order.
func categoriesOf(products []Product) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}

func field(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

func parseAmount(s string) int64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}

func productID(name, shop string) string {
	h := fnv.New64a()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(shop))
	return fmt.Sprintf("p_%x", h.Sum64())
}
