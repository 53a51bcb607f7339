package logquery

import "strings"

// Record is the view of a log record the evaluator needs. Field reports the
// current value of a named field and whether the field is present at all.
// This decouples logquery from the log retrieval package.
type Record interface {
	Field(name string) (string, bool)
}

// Match evaluates the predicate tree against one record. A nil tree matches
// everything. Evaluation is pure: field-name validity was settled at parse
// time, and a declared-but-absent field compares as the empty string.
func Match(node Node, record Record) bool {
	if node == nil {
		return true
	}

	switch n := node.(type) {
	case BinaryExpr:
		return evalBinary(n, record)
	case NotExpr:
		return !Match(n.Expr, record)
	case Comparison:
		return evalComparison(n, record)
	default:
		return false
	}
}

func evalBinary(expr BinaryExpr, record Record) bool {
	switch expr.Op {
	case "AND":
		return Match(expr.Left, record) && Match(expr.Right, record)
	case "OR":
		return Match(expr.Left, record) || Match(expr.Right, record)
	default:
		return false
	}
}

func evalComparison(expr Comparison, record Record) bool {
	value, _ := record.Field(expr.Field)

	switch expr.Op {
	case OpEqual:
		return value == expr.Value
	case OpNotEqual:
		return value != expr.Value
	case OpContains:
		return strings.Contains(value, expr.Value)
	default:
		return false
	}
}
