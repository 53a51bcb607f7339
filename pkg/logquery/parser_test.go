package logquery_test

import (
	"testing"

	"github.com/routerops/mikrotik-mcp/pkg/logquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComparison(t *testing.T) {
	node, err := logquery.Parse(`topics~"dhcp"`)
	require.NoError(t, err)

	cmp, ok := node.(logquery.Comparison)
	require.True(t, ok)
	assert.Equal(t, "topics", cmp.Field)
	assert.Equal(t, logquery.OpContains, cmp.Op)
	assert.Equal(t, "dhcp", cmp.Value)
}

func TestParseBareValue(t *testing.T) {
	node, err := logquery.Parse("buffer=main")
	require.NoError(t, err)

	cmp, ok := node.(logquery.Comparison)
	require.True(t, ok)
	assert.Equal(t, "buffer", cmp.Field)
	assert.Equal(t, logquery.OpEqual, cmp.Op)
	assert.Equal(t, "main", cmp.Value)
}

func TestParseEmptyExpression(t *testing.T) {
	node, err := logquery.Parse("")
	require.NoError(t, err)
	assert.Nil(t, node)

	node, err = logquery.Parse("   ")
	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestParseDeterministic(t *testing.T) {
	const expr = `topics~"dhcp" and message~"assigned" or topics~"error"`

	first, err := logquery.Parse(expr)
	require.NoError(t, err)
	second, err := logquery.Parse(expr)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParsePrecedence(t *testing.T) {
	// AND binds tighter than OR: a or (b and c).
	implicit, err := logquery.Parse(`time="1" or topics="2" and message="3"`)
	require.NoError(t, err)
	explicit, err := logquery.Parse(`time="1" or (topics="2" and message="3")`)
	require.NoError(t, err)
	assert.Equal(t, explicit, implicit)

	grouped, err := logquery.Parse(`(time="1" or topics="2") and message="3"`)
	require.NoError(t, err)
	assert.NotEqual(t, implicit, grouped)

	// On a record where time matches but nothing else does, the two
	// groupings must disagree.
	rec := mapRecord{"time": "1", "topics": "0", "message": "0"}
	assert.True(t, logquery.Match(implicit, rec))
	assert.False(t, logquery.Match(grouped, rec))
}

func TestParseNotBindsTightest(t *testing.T) {
	node, err := logquery.Parse(`not topics~"debug" and message~"up"`)
	require.NoError(t, err)

	bin, ok := node.(logquery.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "AND", bin.Op)
	_, ok = bin.Left.(logquery.NotExpr)
	assert.True(t, ok)
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	lower, err := logquery.Parse(`topics~"a" and message~"b"`)
	require.NoError(t, err)
	upper, err := logquery.Parse(`TOPICS~"a" AND MESSAGE~"b"`)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestParseQuoting(t *testing.T) {
	node, err := logquery.Parse(`message~"logged \"in\""`)
	require.NoError(t, err)

	cmp, ok := node.(logquery.Comparison)
	require.True(t, ok)
	assert.Equal(t, `logged "in"`, cmp.Value)

	// Single quotes work too.
	node, err = logquery.Parse(`message~'assigned 10.0.0.5'`)
	require.NoError(t, err)
	cmp, ok = node.(logquery.Comparison)
	require.True(t, ok)
	assert.Equal(t, "assigned 10.0.0.5", cmp.Value)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		title string
		expr  string
	}{
		{"unknown field", `nonexistent_field="x"`},
		{"unbalanced quote", `message~"dhcp`},
		{"missing value", `topics~`},
		{"missing operator", `topics "dhcp"`},
		{"dangling and", `topics~"a" and`},
		{"unclosed paren", `(topics~"a" or message~"b"`},
		{"lone bang", `topics!"x"`},
		{"trailing garbage", `topics~"a" message~"b"`},
	}

	for _, c := range cases {
		t.Run(c.title, func(t *testing.T) {
			node, err := logquery.Parse(c.expr)
			assert.Nil(t, node)
			require.Error(t, err)

			var syntaxErr *logquery.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, c.expr, syntaxErr.Expr)
		})
	}
}
