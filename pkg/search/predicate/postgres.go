package predicate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// Compile lowers a predicate tree to a Postgres WHERE fragment with
// positional placeholders, suitable for gorm's Where(sql, args...).
func Compile(n Node) (string, []interface{}) {
	switch node := n.(type) {
	case And:
		return compileJunction(node.Children, " AND ", "TRUE")
	case Or:
		return compileJunction(node.Children, " OR ", "FALSE")
	case Contains:
		return fmt.Sprintf("%s ILIKE ?", node.Field), []interface{}{"%" + escapeLike(node.Text) + "%"}
	case HasPrefix:
		return fmt.Sprintf("%s ~ ?", node.Field), []interface{}{"^" + regexp.QuoteMeta(node.Prefix)}
	case Eq:
		return fmt.Sprintf("%s = ?", node.Field), []interface{}{node.Value}
	case TimeRange:
		return fmt.Sprintf("%s BETWEEN ? AND ?", node.Field), []interface{}{node.Start, node.End}
	case VectorWithin:
		sql := fmt.Sprintf("(%s IS NOT NULL AND %s <=> ? < ?)", node.Field, node.Field)
		return sql, []interface{}{pgvector.NewVector(node.Vector), node.MaxDistance}
	default:
		panic(fmt.Sprintf("predicate: unknown node %T", n))
	}
}

// CompileExpr lowers a scoring expression to a Postgres scalar fragment.
func CompileExpr(e Expr) (string, []interface{}) {
	switch expr := e.(type) {
	case Const:
		return fmt.Sprintf("%g", expr.Value), nil
	case BoostSum:
		if len(expr.Terms) == 0 {
			return "0", nil
		}
		parts := make([]string, 0, len(expr.Terms))
		var args []interface{}
		for _, term := range expr.Terms {
			condSQL, condArgs := Compile(term.When)
			parts = append(parts, fmt.Sprintf("(CASE WHEN %s THEN %d ELSE 0 END)", condSQL, term.Weight))
			args = append(args, condArgs...)
		}
		return "(" + strings.Join(parts, " + ") + ")", args
	case CosineSimilarity:
		return fmt.Sprintf("1 - (%s <=> ?)", expr.Field), []interface{}{pgvector.NewVector(expr.Vector)}
	default:
		panic(fmt.Sprintf("predicate: unknown expression %T", e))
	}
}

func compileJunction(children []Node, op, empty string) (string, []interface{}) {
	if len(children) == 0 {
		return empty, nil
	}
	if len(children) == 1 {
		return Compile(children[0])
	}
	parts := make([]string, 0, len(children))
	var args []interface{}
	for _, child := range children {
		sql, childArgs := Compile(child)
		parts = append(parts, "("+sql+")")
		args = append(args, childArgs...)
	}
	return strings.Join(parts, op), args
}

// escapeLike neutralizes LIKE wildcards in user input so a query for
// "100%" matches the literal text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
