package routeros

import "context"

var epLogPrint = Endpoint{Path: "/log/print"}

// LogFetchParams controls one /log/print call. Topic, Buffer and Limit are
// hints only: the device-side `where` filtering of the REST API is not
// reliable, so the retrieval pipeline re-applies its own predicate and cap
// to whatever comes back.
type LogFetchParams struct {
	Brief         bool
	WithExtraInfo bool
	WithoutPaging bool
	File          string
	Topic         string
	Buffer        string
	Limit         int
}

// FetchLogs retrieves raw log records from the device.
func (x *Client) FetchLogs(ctx context.Context, params LogFetchParams) ([]Record, error) {
	return x.Print(ctx, epLogPrint, buildLogBody(params))
}

// buildLogBody maps fetch parameters to the kebab-case property names the
// REST API expects.
func buildLogBody(params LogFetchParams) map[string]interface{} {
	body := map[string]interface{}{}
	if params.Brief {
		body["brief"] = true
	}
	if params.WithExtraInfo {
		body["with-extra-info"] = true
	}
	if params.WithoutPaging {
		body["without-paging"] = true
	}
	putIf(body, "file", params.File)
	return body
}
