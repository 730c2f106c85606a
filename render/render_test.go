package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var functions = []common.Function{
	{Name: "billing", Arn: "arn1", Runtime: "go1.x", CodeSize: 5 * 1024 * 1024, MemorySize: 256},
	{Name: "reports", Arn: "arn2", Runtime: "python3.9", CodeSize: 512},
}

var tags = common.TagMap{
	"arn1": {{Key: "team", Value: "x"}, {Key: "env", Value: "prod"}},
	"arn2": {{Key: "team", Value: "x"}, {Key: "env", Value: "dev"}},
}

func TestListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, functions, nil, Table))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.NotContains(t, lines[0], "TAGS")
	assert.Contains(t, lines[1], "billing")
	assert.Contains(t, lines[1], "5.0 MiB")
	assert.Contains(t, lines[1], "256 MB")
	assert.Contains(t, lines[2], "reports")
	assert.Contains(t, lines[2], "512 B")
}

func TestListTableWithTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, functions, tags, Table))

	assert.Contains(t, buf.String(), "TAGS")
	assert.Contains(t, buf.String(), "env=prod,team=x")
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf, functions, tags, JSON))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "billing", decoded[0]["name"])
	assert.EqualValues(t, 5*1024*1024, decoded[0]["code_size"])
	assert.Equal(t, map[string]interface{}{"team": "x", "env": "prod"}, decoded[0]["tags"])
}

func TestDistinctTags(t *testing.T) {
	assert.Equal(t, []common.Tag{
		{Key: "env", Value: "dev"},
		{Key: "env", Value: "prod"},
		{Key: "team", Value: "x"},
	}, DistinctTags(tags))
	assert.Empty(t, DistinctTags(nil))
}

func TestTagsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Tags(&first, tags, Table))
	require.NoError(t, Tags(&second, tags, Table))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, strings.Count(first.String(), "team"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, Table, f)

	_, err = ParseFormat("yaml")
	var inputErr *common.InputError
	assert.ErrorAs(t, err, &inputErr)
}
