package predicate

import "time"

// Node is a boolean predicate over a content table. Nodes are plain data;
// a backend compiler (see postgres.go) lowers them to the store's query
// language, so the search logic never touches SQL strings directly.
type Node interface {
	isNode()
}

// And matches when all children match. An empty And matches everything.
type And struct {
	Children []Node
}

// Or matches when any child matches. An empty Or matches nothing.
type Or struct {
	Children []Node
}

// Contains matches rows whose field contains Text, case-insensitive.
type Contains struct {
	Field string
	Text  string
}

// HasPrefix matches rows whose field starts with Prefix, case-sensitive.
// The prefix is taken literally (regex metacharacters are escaped).
type HasPrefix struct {
	Field  string
	Prefix string
}

// Eq matches rows whose field equals Value.
type Eq struct {
	Field string
	Value interface{}
}

// TimeRange matches rows whose timestamp field lies in [Start, End].
type TimeRange struct {
	Field string
	Start time.Time
	End   time.Time
}

// VectorWithin matches rows whose stored embedding is within MaxDistance
// (cosine distance) of Vector. Rows without an embedding never match.
type VectorWithin struct {
	Field       string
	Vector      []float32
	MaxDistance float64
}

func (And) isNode()          {}
func (Or) isNode()           {}
func (Contains) isNode()     {}
func (HasPrefix) isNode()    {}
func (Eq) isNode()           {}
func (TimeRange) isNode()    {}
func (VectorWithin) isNode() {}

// Expr is a scalar scoring expression projected alongside each row.
type Expr interface {
	isExpr()
}

// Const evaluates to a fixed value for every row.
type Const struct {
	Value float64
}

// BoostTerm contributes Weight to a BoostSum when its condition matches.
type BoostTerm struct {
	When   Node
	Weight int
}

// BoostSum is the weighted sum of its terms, used as a lexical rank.
type BoostSum struct {
	Terms []BoostTerm
}

// CosineSimilarity evaluates to 1 - cosine_distance(field, Vector).
type CosineSimilarity struct {
	Field  string
	Vector []float32
}

func (Const) isExpr()            {}
func (BoostSum) isExpr()         {}
func (CosineSimilarity) isExpr() {}
