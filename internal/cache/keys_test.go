package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	require.Equal(t, "cheapestInCategories:[1,2,3]", Key("cheapestInCategories", []int64{3, 1, 2}))
	require.Equal(t, "cheapestByCategory:상의", Key("cheapestByCategory", "상의"))
	require.Equal(t, "brandPrices:7", Key("brandPrices", int64(7)))
	require.Equal(t, "lowestTotal", Key("lowestTotal"))
	require.Equal(t, "cheapestInCategories:[]", Key("cheapestInCategories", []int64{}))
}

func TestKey_DoesNotMutateInput(t *testing.T) {
	ids := []int64{3, 1, 2}
	_ = Key("q", ids)
	require.Equal(t, []int64{3, 1, 2}, ids)
}
