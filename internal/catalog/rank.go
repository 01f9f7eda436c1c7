package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-warehouse-api/internal/model"
)

// OrderingKey is a named sort criterion accepted by Rank.
type OrderingKey string

const (
	OrderPriceAsc     OrderingKey = "price-asc"
	OrderPriceDesc    OrderingKey = "price-desc"
	OrderNameAsc      OrderingKey = "name-asc"
	OrderQuantityAsc  OrderingKey = "quantity-asc"
	OrderQuantityDesc OrderingKey = "quantity-desc"
)

// MinSearchLength is the minimum query length Search will scan for.
// Shorter queries match too much of the catalog to be useful.
const MinSearchLength = 3

// Rank returns a new slice holding products ordered by the given key.
// The input slice is not mutated. Sorting is stable, so products with
// equal keys keep their relative input order. An unknown key returns the
// input unchanged rather than failing; callers wire arbitrary filter
// strings straight through from the UI.
func Rank(products []model.Product, key OrderingKey) []model.Product {
	var cmp func(a, b model.Product) int
	switch key {
	case OrderPriceAsc:
		cmp = func(a, b model.Product) int { return comparePrice(a, b) }
	case OrderPriceDesc:
		cmp = func(a, b model.Product) int { return -comparePrice(a, b) }
	case OrderNameAsc:
		// Loose collation ignores case and diacritics, matching how the
		// client compares product names. A Collator is not safe for
		// concurrent use, so each call gets its own.
		collator := collate.New(language.English, collate.Loose)
		cmp = func(a, b model.Product) int { return collator.CompareString(a.Name, b.Name) }
	case OrderQuantityAsc:
		cmp = func(a, b model.Product) int { return TotalQuantity(a) - TotalQuantity(b) }
	case OrderQuantityDesc:
		cmp = func(a, b model.Product) int { return TotalQuantity(b) - TotalQuantity(a) }
	default:
		return products
	}

	ranked := slices.Clone(products)
	slices.SortStableFunc(ranked, cmp)
	return ranked
}

func comparePrice(a, b model.Product) int {
	switch {
	case a.Price < b.Price:
		return -1
	case a.Price > b.Price:
		return 1
	default:
		return 0
	}
}

// Search filters products whose name contains the query
// case-insensitively, or whose barcode contains it verbatim. Queries
// shorter than MinSearchLength return an empty result; that is the
// debounce/empty-state policy of the search screen, not an error.
func Search(products []model.Product, query string) []model.Product {
	if len([]rune(query)) < MinSearchLength {
		return []model.Product{}
	}

	loweredQuery := strings.ToLower(query)
	matched := []model.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), loweredQuery) || strings.Contains(p.Barcode, query) {
			matched = append(matched, p)
		}
	}
	return matched
}
