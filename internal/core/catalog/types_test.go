package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProductChange_Changed(t *testing.T) {
	base := ProductState{Price: decimal.RequireFromString("100"), CategoryID: 1, BrandID: 1, Exists: true}

	tests := []struct {
		name   string
		change ProductChange
		want   bool
	}{
		{
			name:   "identical state",
			change: ProductChange{Old: base, New: base},
			want:   false,
		},
		{
			name: "same price with different scale",
			change: ProductChange{Old: base, New: ProductState{
				Price: decimal.RequireFromString("100.00"), CategoryID: 1, BrandID: 1, Exists: true,
			}},
			want: false,
		},
		{
			name: "price changed",
			change: ProductChange{Old: base, New: ProductState{
				Price: decimal.RequireFromString("99"), CategoryID: 1, BrandID: 1, Exists: true,
			}},
			want: true,
		},
		{
			name: "brand reassigned at same price",
			change: ProductChange{Old: base, New: ProductState{
				Price: base.Price, CategoryID: 1, BrandID: 2, Exists: true,
			}},
			want: true,
		},
		{
			name: "category reassigned at same price",
			change: ProductChange{Old: base, New: ProductState{
				Price: base.Price, CategoryID: 3, BrandID: 1, Exists: true,
			}},
			want: true,
		},
		{
			name:   "create",
			change: ProductChange{New: base},
			want:   true,
		},
		{
			name:   "delete",
			change: ProductChange{Old: base},
			want:   true,
		},
		{
			name:   "neither side exists",
			change: ProductChange{},
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.change.Changed())
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "float64", in: 12.5, want: decimal.RequireFromString("12.5")},
		{name: "int", in: 7, want: decimal.NewFromInt(7)},
		{name: "int64", in: int64(9), want: decimal.NewFromInt(9)},
		{name: "decimal string", in: " 42.125 ", want: decimal.RequireFromString("42.125")},
		{name: "zero is allowed", in: "0", want: decimal.Zero},
		{name: "negative rejected", in: -1.0, wantErr: true},
		{name: "garbage string rejected", in: "abc", wantErr: true},
		{name: "unsupported type rejected", in: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want, got)
		})
	}
}

func TestValidateBrandName(t *testing.T) {
	name, err := ValidateBrandName("  Musinsa Standard ")
	require.NoError(t, err)
	require.Equal(t, "Musinsa Standard", name)

	_, err = ValidateBrandName("   ")
	require.ErrorIs(t, err, ErrInvalidBrandName)
}
