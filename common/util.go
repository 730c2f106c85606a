package common

import (
	"fmt"
	"strings"
)

func TrimAndCheckEmptyString(s *string) bool {
	*s = strings.TrimSpace(*s)
	return len(*s) == 0
}

// ParseTagFilter reads a KEY=VALUE expression. The split happens on the first '=' so values may contain '='.
func ParseTagFilter(expr string) (*TagFilter, error) {
	key, value, found := strings.Cut(expr, "=")
	if !found {
		return nil, &InputError{Message: fmt.Sprintf("tag filter %q must be of the form KEY=VALUE", expr)}
	}
	if len(key) == 0 {
		return nil, &InputError{Message: fmt.Sprintf("tag filter %q has an empty key", expr)}
	}
	if len(value) == 0 {
		return nil, &InputError{Message: fmt.Sprintf("tag filter %q has an empty value", expr)}
	}
	return &TagFilter{Key: key, Value: value}, nil
}

func ParseSortKey(s string) (SortKey, error) {
	switch strings.TrimSpace(s) {
	case "":
		return SortNone, nil
	case "name":
		return SortName, nil
	case "codesize":
		return SortCodeSize, nil
	case "runtime":
		return SortRuntime, nil
	}
	return SortNone, &InputError{
		Message: fmt.Sprintf("unknown sort key %q, expected one of name, codesize, runtime", s),
	}
}
