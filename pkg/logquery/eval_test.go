package logquery_test

import (
	"testing"

	"github.com/routerops/mikrotik-mcp/pkg/logquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapRecord implements logquery.Record for tests.
type mapRecord map[string]string

func (x mapRecord) Field(name string) (string, bool) {
	v, ok := x[name]
	return v, ok
}

func mustParse(t *testing.T, expr string) logquery.Node {
	t.Helper()
	node, err := logquery.Parse(expr)
	require.NoError(t, err)
	return node
}

func TestMatchNilTree(t *testing.T) {
	rec := mapRecord{"topics": "system,info", "message": "login ok"}
	assert.True(t, logquery.Match(nil, rec))
}

func TestMatchOperators(t *testing.T) {
	rec := mapRecord{
		"time":    "jan/02 10:01:33",
		"topics":  "dhcp,info",
		"message": "assigned 10.0.0.5 to 4C:5E:0C:11:22:33",
	}

	cases := []struct {
		expr    string
		matches bool
	}{
		{`topics="dhcp,info"`, true},
		{`topics="dhcp"`, false}, // equality is exact, not prefix
		{`topics!="dhcp"`, true},
		{`topics!="dhcp,info"`, false},
		{`topics~"dhcp"`, true},
		{`topics~"DHCP"`, false}, // substring match is case-sensitive
		{`message~"assigned"`, true},
		{`message~"10.0.0.5"`, true},
		{`message~"denied"`, false},
		{`not message~"denied"`, true},
		{`topics~"dhcp" and message~"assigned"`, true},
		{`topics~"dhcp" and message~"denied"`, false},
		{`topics~"wireless" or message~"assigned"`, true},
		{`topics~"wireless" or message~"denied"`, false},
	}

	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			assert.Equal(t, c.matches, logquery.Match(mustParse(t, c.expr), rec))
		})
	}
}

func TestMatchSubstringProperty(t *testing.T) {
	const value = "interface ether1 link up"
	rec := mapRecord{"message": value}

	// Every substring of the field value must match.
	for i := 0; i < len(value); i++ {
		for j := i; j <= len(value); j++ {
			node := logquery.Comparison{Field: "message", Op: logquery.OpContains, Value: value[i:j]}
			assert.True(t, logquery.Match(node, rec), "substring %q", value[i:j])
		}
	}

	node := logquery.Comparison{Field: "message", Op: logquery.OpContains, Value: "ether2"}
	assert.False(t, logquery.Match(node, rec))
}

func TestMatchMissingField(t *testing.T) {
	// No buffer key at all: comparisons see the empty string, never fail.
	rec := mapRecord{"topics": "system,info", "message": "rebooted"}

	assert.False(t, logquery.Match(mustParse(t, `buffer="main"`), rec))
	assert.False(t, logquery.Match(mustParse(t, `buffer~"m"`), rec))
	assert.True(t, logquery.Match(mustParse(t, `buffer!="main"`), rec))
	assert.True(t, logquery.Match(mustParse(t, `buffer=""`), rec))
}

func TestMatchDeterministic(t *testing.T) {
	rec := mapRecord{"topics": "dhcp,info", "message": "assigned"}
	node := mustParse(t, `topics~"dhcp" and not message~"released"`)

	first := logquery.Match(node, rec)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, logquery.Match(node, rec))
	}
}
