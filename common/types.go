package common

type Function struct {
	Name         string `json:"name"`
	Arn          string `json:"arn"`
	Runtime      string `json:"runtime"`
	CodeSize     int64  `json:"code_size"`
	MemorySize   int32  `json:"memory_size,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

type Tag struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	ResourceArn string `json:"-"`
}

// TagMap holds the tags of each resource, keyed by resource ARN.
type TagMap map[string][]Tag

// TagFilter is a single key=value equality predicate. Both sides match case-sensitively.
type TagFilter struct {
	Key   string
	Value string
}

type SortKey int

const (
	SortNone SortKey = iota
	SortName
	SortCodeSize
	SortRuntime
)

func (k SortKey) String() string {
	switch k {
	case SortName:
		return "name"
	case SortCodeSize:
		return "codesize"
	case SortRuntime:
		return "runtime"
	}
	return "none"
}

// ClientParams overrides parts of the default AWS configuration chain. Empty fields fall back to the chain.
type ClientParams struct {
	Region  string
	Profile string
}
