// Package stock holds the pure filtering and ordering steps applied to fetched functions.
package stock

import "github.com/a-pavithraa/lambstock/common"

// Filter keeps the functions carrying a tag that equals filter on both key and value.
// A nil filter returns functions as given. Relative order is preserved.
func Filter(functions []common.Function, tags common.TagMap, filter *common.TagFilter) []common.Function {
	if filter == nil {
		return functions
	}
	retained := make([]common.Function, 0, len(functions))
	for _, function := range functions {
		if HasTag(tags[function.Arn], *filter) {
			retained = append(retained, function)
		}
	}
	return retained
}

func HasTag(tags []common.Tag, filter common.TagFilter) bool {
	for _, tag := range tags {
		if tag.Key == filter.Key && tag.Value == filter.Value {
			return true
		}
	}
	return false
}
