package search

import (
	"fmt"
	"strings"
	"time"

	"kb-search-be/pkg/search/predicate"
)

// Mode selects the retrieval strategy.
type Mode string

const (
	ModeStrict   Mode = "strict"
	ModeFuzzy    Mode = "fuzzy"
	ModeSemantic Mode = "semantic"
)

// ScoreColumn is the alias the engine projects the rank/similarity under.
const ScoreColumn = "score"

// Relative boost weights for fuzzy ranking. A verbatim phrase hit always
// outranks any combination of isolated term hits on a different row.
const (
	boostPhrasePrimary   = 6
	boostPhraseSecondary = 4
	boostTermPrimary     = 2
	boostTermSecondary   = 1
)

// Filters are the resolved request filters applied on top of the mode
// predicate. A since_gp version must already be resolved into After.
type Filters struct {
	SenderPrefix string
	After        *time.Time
	Before       *time.Time
	ChannelID    string
	Site         string
}

// Order is one key of the ordering chain.
type Order struct {
	Column string
	Desc   bool
}

// Plan is the full retrieval recipe for one request: the predicate the
// count and page queries share, the score projection, and the ordering
// chain. It is returned complete from BuildPlan and never mutated.
type Plan struct {
	Predicate predicate.Node
	Score     predicate.Expr
	OrderBy   []Order
}

// OrderSQL renders the ordering chain as an ORDER BY body.
func (p Plan) OrderSQL() string {
	parts := make([]string, 0, len(p.OrderBy))
	for _, o := range p.OrderBy {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// BuildPlan composes the predicate, score and ordering for one request.
// Pure function of its inputs: semantic mode with a nil queryEmbedding
// (provider failure, logged by the caller) degrades to the fuzzy lexical
// plan rather than erroring. An unknown mode is a contract violation with
// the request validator and panics.
func BuildPlan(d Domain, phrase string, mode Mode, queryEmbedding []float32, f Filters, maxDistance float64) Plan {
	if mode == ModeSemantic && queryEmbedding == nil {
		mode = ModeFuzzy
	}

	var plan Plan
	switch mode {
	case ModeStrict:
		plan = strictPlan(d, phrase)
	case ModeFuzzy:
		plan = fuzzyPlan(d, phrase)
	case ModeSemantic:
		plan = semanticPlan(d, queryEmbedding, maxDistance)
	default:
		panic(fmt.Sprintf("search: unknown mode %q", mode))
	}

	plan.Predicate = predicate.And{
		Children: append([]predicate.Node{plan.Predicate}, filterNodes(d, f)...),
	}
	plan.OrderBy = orderChain(d)
	return plan
}

// strictPlan requires the whole phrase: a single word must appear in the
// primary or secondary field, a multi-word phrase must appear verbatim.
// Matching is case-insensitive substring (one semantic for every domain).
func strictPlan(d Domain, phrase string) Plan {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return Plan{Predicate: predicate.And{}, Score: predicate.Const{}}
	}

	needle := phrase
	if len(words) == 1 {
		needle = words[0]
	}
	return Plan{
		Predicate: eitherField(d, needle),
		Score: predicate.BoostSum{Terms: []predicate.BoostTerm{
			{When: predicate.Contains{Field: d.PrimaryField, Text: needle}, Weight: boostTermPrimary},
			{When: predicate.Contains{Field: d.SecondaryField, Text: needle}, Weight: boostTermSecondary},
		}},
	}
}

// fuzzyPlan matches any term in either field and ranks by weighted hits,
// with a verbatim multi-word phrase boosted above isolated term matches.
func fuzzyPlan(d Domain, phrase string) Plan {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return Plan{Predicate: predicate.And{}, Score: predicate.Const{}}
	}

	var terms []predicate.Node
	var boosts []predicate.BoostTerm
	if len(words) > 1 {
		boosts = append(boosts,
			predicate.BoostTerm{When: predicate.Contains{Field: d.PrimaryField, Text: phrase}, Weight: boostPhrasePrimary},
			predicate.BoostTerm{When: predicate.Contains{Field: d.SecondaryField, Text: phrase}, Weight: boostPhraseSecondary},
		)
	}
	for _, w := range words {
		terms = append(terms,
			predicate.Contains{Field: d.PrimaryField, Text: w},
			predicate.Contains{Field: d.SecondaryField, Text: w},
		)
		boosts = append(boosts,
			predicate.BoostTerm{When: predicate.Contains{Field: d.PrimaryField, Text: w}, Weight: boostTermPrimary},
			predicate.BoostTerm{When: predicate.Contains{Field: d.SecondaryField, Text: w}, Weight: boostTermSecondary},
		)
	}
	return Plan{
		Predicate: predicate.Or{Children: terms},
		Score:     predicate.BoostSum{Terms: boosts},
	}
}

// semanticPlan keeps rows whose stored embedding lies within maxDistance
// of the query embedding and ranks by cosine similarity. Rows that have
// no embedding yet simply never match.
func semanticPlan(d Domain, queryEmbedding []float32, maxDistance float64) Plan {
	return Plan{
		Predicate: predicate.VectorWithin{
			Field:       d.EmbeddingField,
			Vector:      queryEmbedding,
			MaxDistance: maxDistance,
		},
		Score: predicate.CosineSimilarity{Field: d.EmbeddingField, Vector: queryEmbedding},
	}
}

func eitherField(d Domain, text string) predicate.Node {
	return predicate.Or{Children: []predicate.Node{
		predicate.Contains{Field: d.PrimaryField, Text: text},
		predicate.Contains{Field: d.SecondaryField, Text: text},
	}}
}

// filterNodes translates the resolved filters into predicates, skipping
// any the domain has no column for.
func filterNodes(d Domain, f Filters) []predicate.Node {
	var nodes []predicate.Node

	if f.SenderPrefix != "" && d.SupportsSender() {
		nodes = append(nodes, predicate.HasPrefix{Field: d.SenderField, Prefix: f.SenderPrefix})
	}
	if (f.After != nil || f.Before != nil) && d.HasTimestamp() {
		start := time.Unix(0, 0).UTC()
		if f.After != nil {
			start = *f.After
		}
		end := time.Now().UTC()
		if f.Before != nil {
			end = *f.Before
		}
		nodes = append(nodes, predicate.TimeRange{Field: d.TimestampField, Start: start, End: end})
	}
	if f.ChannelID != "" && d.SupportsChannelScope() {
		nodes = append(nodes, predicate.Eq{Field: d.ChannelField, Value: f.ChannelID})
	}
	if f.Site != "" && d.SupportsSiteScope() {
		nodes = append(nodes, predicate.Eq{Field: d.SiteField, Value: f.Site})
	}
	return nodes
}

// orderChain is the deterministic tie-break chain: rank first, newest
// next where the domain is dated, identity last so equal rows always
// come back in the same order.
func orderChain(d Domain) []Order {
	chain := []Order{{Column: ScoreColumn, Desc: true}}
	if d.HasTimestamp() {
		chain = append(chain, Order{Column: d.TimestampField, Desc: true})
	}
	return append(chain, Order{Column: d.IdentityField})
}
