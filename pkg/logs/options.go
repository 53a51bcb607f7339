package logs

// DefaultMaxLogs caps one retrieval unless the caller chooses otherwise.
const DefaultMaxLogs = 1000

var knownFields = map[string]struct{}{
	FieldTime:    {},
	FieldTopics:  {},
	FieldMessage: {},
	FieldBuffer:  {},
	FieldExtra:   {},
}

// Options is the per-call retrieval configuration.
type Options struct {
	// Brief limits output to time, topics and message.
	Brief bool

	// Where is an optional filter expression, see logquery.
	Where string

	// MaxLogs caps the number of returned entries. Zero means
	// DefaultMaxLogs; negative values are rejected.
	MaxLogs int

	// Proplist, when set, is the final field allowlist applied after the
	// brief/full expansion. It may narrow the field set, never widen it.
	Proplist []string
}

func (x Options) maxLogs() int {
	if x.MaxLogs == 0 {
		return DefaultMaxLogs
	}
	return x.MaxLogs
}

// validate fails fast, before any device call is made.
func (x Options) validate() error {
	if x.MaxLogs < 0 {
		return newConfigError("max_logs must be positive, got %d", x.MaxLogs)
	}
	for _, field := range x.Proplist {
		if _, ok := knownFields[field]; !ok {
			return newConfigError("unknown field %q in proplist", field)
		}
	}
	return nil
}
