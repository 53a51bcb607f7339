// Package logs implements log retrieval from a RouterOS device: it fetches
// raw records through a Source, compiles the caller's filter expression with
// logquery, evaluates it per record, projects the requested fields and
// enforces the result cap. Retrieval is all-or-nothing; no partial results
// survive a failure.
package logs

import (
	"fmt"

	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

// Core record fields. Everything else the device returns lands in Extra.
const (
	FieldTime    = "time"
	FieldTopics  = "topics"
	FieldMessage = "message"
	FieldBuffer  = "buffer"
	FieldExtra   = "extra"
)

// Record is one log line as retrieved from the device. Time, Topics and
// Message are always present; Buffer only when the record came from a named
// memory buffer, tracked separately from the empty string. Records are
// built fresh per retrieval call and never cached.
type Record struct {
	Time      string
	Topics    string
	Message   string
	Buffer    string
	HasBuffer bool
	Extra     map[string]string
}

// Field implements logquery.Record.
func (x Record) Field(name string) (string, bool) {
	switch name {
	case FieldTime:
		return x.Time, true
	case FieldTopics:
		return x.Topics, true
	case FieldMessage:
		return x.Message, true
	case FieldBuffer:
		return x.Buffer, x.HasBuffer
	default:
		return "", false
	}
}

// newRecord shapes one raw device record. Unknown properties are collected
// into Extra so nothing the device reports is silently dropped.
func newRecord(raw routeros.Record) Record {
	rec := Record{}
	for key, value := range raw {
		s := stringValue(value)
		switch key {
		case FieldTime:
			rec.Time = s
		case FieldTopics:
			rec.Topics = s
		case FieldMessage:
			rec.Message = s
		case FieldBuffer:
			rec.Buffer = s
			rec.HasBuffer = true
		default:
			if rec.Extra == nil {
				rec.Extra = map[string]string{}
			}
			rec.Extra[key] = s
		}
	}
	return rec
}

func stringValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}
