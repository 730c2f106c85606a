package stock

import (
	"sort"

	"github.com/a-pavithraa/lambstock/common"
)

// Sort returns a stably ordered copy of functions. SortNone keeps the API order.
func Sort(functions []common.Function, key common.SortKey) []common.Function {
	sorted := make([]common.Function, len(functions))
	copy(sorted, functions)

	var less func(a, b common.Function) bool
	switch key {
	case common.SortName:
		less = func(a, b common.Function) bool { return a.Name < b.Name }
	case common.SortCodeSize:
		less = func(a, b common.Function) bool { return a.CodeSize < b.CodeSize }
	case common.SortRuntime:
		less = func(a, b common.Function) bool { return a.Runtime < b.Runtime }
	default:
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
