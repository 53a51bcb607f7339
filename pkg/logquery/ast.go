// Package logquery compiles RouterOS-style filter expressions such as
// `topics~"dhcp" and message~"assigned"` into a predicate tree and evaluates
// it against log records. The device's own `where` parameter does not work
// reliably over the REST API, so filtering happens on this side.
package logquery

// Node is the interface implemented by all predicate tree nodes.
type Node interface {
	node() // marker method
}

// Op is a comparison operator of a leaf node.
type Op string

const (
	OpEqual    Op = "="
	OpNotEqual Op = "!="
	OpContains Op = "~" // case-sensitive substring containment
)

// Comparison is a leaf node matching one record field against a value.
type Comparison struct {
	Field string // normalized to lower case, always a member of Fields
	Op    Op
	Value string
}

func (Comparison) node() {}

// BinaryExpr represents an AND or OR over two sub-trees.
type BinaryExpr struct {
	Op    string // "AND" or "OR"
	Left  Node
	Right Node
}

func (BinaryExpr) node() {}

// NotExpr negates its inner expression.
type NotExpr struct {
	Expr Node
}

func (NotExpr) node() {}

// Fields is the closed set of record fields a filter expression may
// reference. Anything else is a syntax error at parse time, never a silent
// non-match.
var Fields = map[string]struct{}{
	"time":    {},
	"topics":  {},
	"message": {},
	"buffer":  {},
}
