package search

// Domain maps a content table's physical layout onto the generic search
// engine: which columns hold the searchable text, the timestamp used for
// ordering and range filters, and the optional scope columns. A single
// engine parameterized by this descriptor replaces per-table search code.
type Domain struct {
	Name           string
	Table          string
	PrimaryField   string // first searchable text column (e.g. sender, title)
	SecondaryField string // second searchable text column (e.g. content, body)
	TimestampField string // empty when the domain has no timestamp
	IdentityField  string // stable tie-break column
	EmbeddingField string

	// Scope columns. An empty value means the domain does not support
	// that filter and it is silently ignored.
	SenderField  string
	ChannelField string
	SiteField    string
}

func (d Domain) HasTimestamp() bool { return d.TimestampField != "" }

func (d Domain) SupportsSender() bool { return d.SenderField != "" }

func (d Domain) SupportsChannelScope() bool { return d.ChannelField != "" }

func (d Domain) SupportsSiteScope() bool { return d.SiteField != "" }
