package cache

import (
	"sort"
	"strconv"
	"strings"
)

// Key builds a deterministic cache key from a query name and its parameters,
// e.g. Key("cheapestInCategories", []int64{3, 1, 2}) == "cheapestInCategories:[1,2,3]".
// ID lists are sorted so that request order does not split the cache.
func Key(query string, params ...interface{}) string {
	var b strings.Builder
	b.WriteString(query)
	for _, p := range params {
		b.WriteByte(':')
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case int:
			b.WriteString(strconv.Itoa(v))
		case []int64:
			ids := append([]int64(nil), v...)
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			b.WriteByte('[')
			for i, id := range ids {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.FormatInt(id, 10))
			}
			b.WriteByte(']')
		default:
			panic("cache: unsupported key parameter type")
		}
	}
	return b.String()
}
