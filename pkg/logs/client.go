package logs

import (
	"context"

	"github.com/routerops/mikrotik-mcp/pkg/logquery"
	"github.com/routerops/mikrotik-mcp/pkg/routeros"
	"github.com/sirupsen/logrus"
)

// Logger can be modified by external for testing
var Logger = logrus.New()

// Source retrieves raw log records from the managed device. Implemented by
// routeros.Client; replaced by a mock in tests.
type Source interface {
	FetchLogs(ctx context.Context, params routeros.LogFetchParams) ([]routeros.Record, error)
	IsReachable(ctx context.Context) bool
}

// Severity selects one class of log records.
type Severity string

const (
	SeverityDebug   Severity = "debug"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Client is the log retrieval pipeline. It holds no mutable state; every
// call compiles its own predicate and accumulator, so concurrent retrievals
// are safe as long as the Source supports concurrent requests.
type Client struct {
	source Source
}

// New creates a log retrieval client over the given source.
func New(source Source) *Client {
	return &Client{source: source}
}

// mode describes how one retrieval constrains the record stream beyond the
// caller's own filter expression.
type mode struct {
	severity  Severity
	buffer    string
	withExtra bool
}

// Get retrieves logs with optional filtering.
func (x *Client) Get(ctx context.Context, opts Options) ([]Entry, error) {
	return x.retrieve(ctx, mode{}, opts)
}

// Count returns the number of records matching the options' filter. The
// MaxLogs cap does not apply to counting.
func (x *Client) Count(ctx context.Context, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	pred, fetchParams, err := x.prepare(mode{}, opts)
	if err != nil {
		return 0, err
	}

	raw, err := x.source.FetchLogs(ctx, fetchParams)
	if err != nil {
		return 0, newRetrievalError(err)
	}

	count := 0
	for _, r := range raw {
		if logquery.Match(pred, newRecord(r)) {
			count++
		}
	}
	return count, nil
}

// GetBySeverity retrieves logs of one severity class. The severity
// constraint is composed with the caller's filter as a predicate AND, so a
// conflicting user filter can narrow but never override it.
func (x *Client) GetBySeverity(ctx context.Context, severity Severity, opts Options) ([]Entry, error) {
	opts.Brief = true
	return x.retrieve(ctx, mode{severity: severity}, opts)
}

// GetDebug retrieves debug logs.
func (x *Client) GetDebug(ctx context.Context, opts Options) ([]Entry, error) {
	return x.GetBySeverity(ctx, SeverityDebug, opts)
}

// GetError retrieves error logs.
func (x *Client) GetError(ctx context.Context, opts Options) ([]Entry, error) {
	return x.GetBySeverity(ctx, SeverityError, opts)
}

// GetWarning retrieves warning logs.
func (x *Client) GetWarning(ctx context.Context, opts Options) ([]Entry, error) {
	return x.GetBySeverity(ctx, SeverityWarning, opts)
}

// GetInfo retrieves info logs.
func (x *Client) GetInfo(ctx context.Context, opts Options) ([]Entry, error) {
	return x.GetBySeverity(ctx, SeverityInfo, opts)
}

// GetFromBuffer retrieves logs from a named memory buffer.
func (x *Client) GetFromBuffer(ctx context.Context, bufferName string, opts Options) ([]Entry, error) {
	if bufferName == "" {
		return nil, newConfigError("buffer name must not be empty")
	}
	return x.retrieve(ctx, mode{buffer: bufferName}, opts)
}

// GetWithExtraInfo retrieves logs including the device's extra metadata.
// Depending on device configuration the extra fields may still be absent.
func (x *Client) GetWithExtraInfo(ctx context.Context, opts Options) ([]Entry, error) {
	return x.retrieve(ctx, mode{withExtra: true}, opts)
}

// Find retrieves logs matching a filter expression with default options.
func (x *Client) Find(ctx context.Context, where string) ([]Entry, error) {
	return x.Get(ctx, Options{Where: where})
}

// GetByCondition retrieves logs matching the given condition.
func (x *Client) GetByCondition(ctx context.Context, condition string, opts Options) ([]Entry, error) {
	opts.Where = condition
	return x.Get(ctx, opts)
}

// IsReachable reports device connectivity.
func (x *Client) IsReachable(ctx context.Context) bool {
	return x.source.IsReachable(ctx)
}

// prepare compiles the full predicate and builds the fetch parameters.
// Compilation happens before any device call so a malformed expression
// never costs I/O. The mode constraints are composed with the user filter
// as predicate trees, never by concatenating expression strings.
func (x *Client) prepare(m mode, opts Options) (logquery.Node, routeros.LogFetchParams, error) {
	userPred, err := logquery.Parse(opts.Where)
	if err != nil {
		return nil, routeros.LogFetchParams{}, err
	}

	pred := userPred
	if m.severity != "" {
		pred = combine(logquery.Comparison{
			Field: FieldTopics,
			Op:    logquery.OpContains,
			Value: string(m.severity),
		}, pred)
	}
	if m.buffer != "" {
		pred = combine(logquery.Comparison{
			Field: FieldBuffer,
			Op:    logquery.OpEqual,
			Value: m.buffer,
		}, pred)
	}

	fetchParams := routeros.LogFetchParams{
		Brief:         opts.Brief,
		WithExtraInfo: m.withExtra,
		Topic:         string(m.severity),
		Buffer:        m.buffer,
		Limit:         opts.maxLogs(),
	}

	return pred, fetchParams, nil
}

func (x *Client) retrieve(ctx context.Context, m mode, opts Options) ([]Entry, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pred, fetchParams, err := x.prepare(m, opts)
	if err != nil {
		return nil, err
	}

	raw, err := x.source.FetchLogs(ctx, fetchParams)
	if err != nil {
		return nil, newRetrievalError(err)
	}

	maxLogs := opts.maxLogs()
	entries := []Entry{}

	// Records stay in source order; the cap applies after filtering, so a
	// restrictive filter still scans the whole stream until the cap is met
	// or the source is exhausted.
	for _, r := range raw {
		rec := newRecord(r)
		if !logquery.Match(pred, rec) {
			continue
		}
		entries = append(entries, formatRecord(rec, opts.Brief, opts.Proplist))
		if len(entries) >= maxLogs {
			Logger.WithFields(logrus.Fields{
				"max_logs":  maxLogs,
				"retrieved": len(raw),
			}).Debug("Result cap reached")
			break
		}
	}

	return entries, nil
}

// combine joins two predicates with AND, tolerating nil operands.
func combine(left, right logquery.Node) logquery.Node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return logquery.BinaryExpr{Op: "AND", Left: left, Right: right}
}
