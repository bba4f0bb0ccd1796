package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestHasDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		original *decimal.Decimal
		want     bool
	}{
		{"no original price", "19900", nil, false},
		{"original above price", "19900", decPtr("21500"), true},
		{"original equals price", "21500", decPtr("21500"), false},
		{"original below price", "21500", decPtr("19900"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ProductOption{Price: dec(tt.price), OriginalPrice: tt.original}
			if got := o.HasDiscount(); got != tt.want {
				t.Errorf("HasDiscount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		original *decimal.Decimal
		want     string
	}{
		{"ostiones promo", "19900", decPtr("21500"), "7.44"},
		{"half off", "5000", decPtr("10000"), "50"},
		{"third off", "10000", decPtr("15000"), "33.33"},
		{"rounds half up", "9990", decPtr("12345"), "19.08"},
		{"no discount", "19900", nil, "0"},
		{"original below price", "21500", decPtr("19900"), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ProductOption{Price: dec(tt.price), OriginalPrice: tt.original}
			got := o.DiscountPercentage()
			if !got.Equal(dec(tt.want)) {
				t.Errorf("DiscountPercentage() = %s, want %s", got, tt.want)
			}
		})
	}
}
