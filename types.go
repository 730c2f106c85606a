package main

// Stage is a step of a single command run. Stages only move forward.
type Stage int

const (
	ParsingArgs Stage = iota
	Fetching
	Filtering
	Sorting
	Rendering
	Done
	Failed
)

func (s Stage) String() string {
	switch s {
	case ParsingArgs:
		return "parsing-args"
	case Fetching:
		return "fetching"
	case Filtering:
		return "filtering"
	case Sorting:
		return "sorting"
	case Rendering:
		return "rendering"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}
