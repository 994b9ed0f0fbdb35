package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported price reduction operators.
const (
	OpSum = "sum"
	OpMin = "min"
	OpMax = "max"
)

// Aggregator defines the reduce semantics of a price operator.
type Aggregator interface {
	// Initial returns the aggregate value after the first price for a key.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming price into an existing aggregate.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Operators is the registry of supported operators.
var Operators = map[string]Aggregator{
	OpSum: sumAgg{},
	OpMin: minAgg{},
	OpMax: maxAgg{},
}

type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }

type minAgg struct{}

func (minAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.LessThan(cur) {
		return inc
	}
	return cur
}

type maxAgg struct{}

func (maxAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.GreaterThan(cur) {
		return inc
	}
	return cur
}

// fold reduces prices keyed by K with the named operator.
// Keys with no prices are absent from the result.
func fold[K comparable](op string, keyed func(yield func(K, decimal.Decimal))) map[K]decimal.Decimal {
	agg := Operators[op]
	out := make(map[K]decimal.Decimal)
	keyed(func(k K, v decimal.Decimal) {
		if cur, ok := out[k]; ok {
			out[k] = agg.Apply(cur, v)
			return
		}
		out[k] = agg.Initial(v)
	})
	return out
}
