package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `name,shop,price,img,fee,category,promo,stock
Sabun Mandi,Toko A,15000,https://img/x.png,2000,Bodycare,YES,10
,Toko B,9000,,1000,Bodycare,,5
Serum Wajah,Toko C,abc,,2000,Skincare,no,3
`

func TestParseCSVDropsBlankNamesAndDefaultsNumerics(t *testing.T) {
	products := parseCSV(sampleCSV)
	require.Len(t, products, 2)

	assert.Equal(t, "Sabun Mandi", products[0].Name)
	assert.Equal(t, "Toko A", products[0].Shop)
	assert.Equal(t, int64(15000), products[0].Price)
	assert.Equal(t, int64(2000), products[0].Fee)
	assert.Equal(t, "yes", products[0].Promo)
	assert.Equal(t, int64(10), products[0].Stock)

	// Non-numeric price defaults to 0.
	assert.Equal(t, "Serum Wajah", products[1].Name)
	assert.Equal(t, int64(0), products[1].Price)
}

func TestParseCSVMissingTrailingColumns(t *testing.T) {
	products := parseCSV("name,shop,price\nLipstik,Toko D,25000")
	require.Len(t, products, 1)
	assert.Equal(t, int64(25000), products[0].Price)
	assert.Equal(t, int64(0), products[0].Fee)
	assert.Equal(t, "", products[0].Category)
	assert.Equal(t, int64(0), products[0].Stock)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	assert.Empty(t, parseCSV("name,shop,price,img,fee,category,promo,stock\n"))
	assert.Empty(t, parseCSV(""))
}

func TestProductIDStableAcrossParses(t *testing.T) {
	first := parseCSV(sampleCSV)
	second := parseCSV(sampleCSV)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	// Distinct name+shop pairs get distinct ids.
	assert.NotEqual(t, first[0].ID, first[1].ID)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	products := parseCSV(`name,shop,price,img,fee,category,promo,stock
A,S,1,,0,Bodycare,,1
B,S,1,,0,Skincare,,1
C,S,1,,0,Bodycare,,1
D,S,1,,0,,,1
`)
	assert.Equal(t, []string{"Bodycare", "Skincare"}, categoriesOf(products))
}
