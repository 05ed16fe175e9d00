// Package items holds the sample catalogue the admin console seeds.
package items

import (
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/validation"
)

// Sample returns a fresh copy of the sample catalogue.
func Sample() []validation.NewItem {
	return []validation.NewItem{
		{Name: "Laptop", Barcode: "123985473165", Price: money.MustParse("900"), Description: "A high-performance laptop"},
		{Name: "Keyboard", Barcode: "231985128446", Price: money.MustParse("150"), Description: "Mechanical gaming keyboard"},
		{Name: "Mouse", Barcode: "456789123456", Price: money.MustParse("50"), Description: "Wireless gaming mouse"},
		{Name: "Monitor", Barcode: "789456123789", Price: money.MustParse("300"), Description: "24-inch 4K monitor"},
	}
}
