package logs

// Entry is one formatted log record as returned to callers.
type Entry map[string]interface{}

// formatRecord projects one record into its output shape. Brief mode keeps
// time, topics and message; full mode adds buffer and extra when present.
// The proplist is the final authority: it is applied after the brief/full
// expansion and can only narrow the field set. The input record is never
// modified.
func formatRecord(rec Record, brief bool, proplist []string) Entry {
	entry := Entry{
		FieldTime:    rec.Time,
		FieldTopics:  rec.Topics,
		FieldMessage: rec.Message,
	}

	if !brief {
		if rec.HasBuffer {
			entry[FieldBuffer] = rec.Buffer
		}
		if rec.Extra != nil {
			extra := make(map[string]string, len(rec.Extra))
			for k, v := range rec.Extra {
				extra[k] = v
			}
			entry[FieldExtra] = extra
		}
	}

	if len(proplist) == 0 {
		return entry
	}

	allowed := make(map[string]struct{}, len(proplist))
	for _, field := range proplist {
		allowed[field] = struct{}{}
	}
	for key := range entry {
		if _, ok := allowed[key]; !ok {
			delete(entry, key)
		}
	}
	return entry
}
