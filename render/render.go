// Package render writes function and tag listings as a table or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type Format int

const (
	Table Format = iota
	JSON
)

func ParseFormat(s string) (Format, error) {
	switch strings.TrimSpace(s) {
	case "", "table":
		return Table, nil
	case "json":
		return JSON, nil
	}
	return Table, &common.InputError{Message: fmt.Sprintf("unknown output format %q, expected table or json", s)}
}

type listedFunction struct {
	common.Function
	Tags map[string]string `json:"tags,omitempty"`
}

// List writes functions in the given order. When tags is nil no tag column is written.
func List(w io.Writer, functions []common.Function, tags common.TagMap, format Format) error {
	if format == JSON {
		out := make([]listedFunction, 0, len(functions))
		for _, f := range functions {
			item := listedFunction{Function: f}
			if tags != nil {
				item.Tags = make(map[string]string)
				for _, tag := range tags[f.Arn] {
					item.Tags[tag.Key] = tag.Value
				}
			}
			out = append(out, item)
		}
		return writeJSON(w, out)
	}

	header := []string{"Name", "Runtime", "Size", "Memory", "Last Modified"}
	if tags != nil {
		header = append(header, "Tags")
	}
	table := newTable(w, header)
	for _, f := range functions {
		row := []string{f.Name, f.Runtime, HumanSize(f.CodeSize), memory(f.MemorySize), f.LastModified}
		if tags != nil {
			row = append(row, joinTags(tags[f.Arn]))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// Tags writes the distinct key/value pairs found across all resources, sorted by key then value.
func Tags(w io.Writer, tags common.TagMap, format Format) error {
	distinct := DistinctTags(tags)
	if format == JSON {
		return writeJSON(w, distinct)
	}
	table := newTable(w, []string{"Key", "Value"})
	for _, tag := range distinct {
		table.Append([]string{tag.Key, tag.Value})
	}
	table.Render()
	return nil
}

func DistinctTags(tags common.TagMap) []common.Tag {
	type pair struct{ key, value string }
	seen := make(map[pair]struct{})
	distinct := make([]common.Tag, 0)
	for _, resourceTags := range tags {
		for _, tag := range resourceTags {
			p := pair{tag.Key, tag.Value}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			distinct = append(distinct, common.Tag{Key: tag.Key, Value: tag.Value})
		}
	}
	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].Key != distinct[j].Key {
			return distinct[i].Key < distinct[j].Key
		}
		return distinct[i].Value < distinct[j].Value
	})
	return distinct
}

func HumanSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

func memory(mb int32) string {
	if mb == 0 {
		return ""
	}
	return fmt.Sprintf("%d MB", mb)
}

func joinTags(tags []common.Tag) string {
	pairs := make([]string, 0, len(tags))
	for _, tag := range tags {
		pairs = append(pairs, tag.Key+"="+tag.Value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetCenterSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
