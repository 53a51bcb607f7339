package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/itchyny/gojq"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
)

type getLogsMetaData struct {
	Total int `json:"total"`
	Limit int `json:"limit"`
}

type logsResponse struct {
	Logs     []logs.Entry    `json:"logs"`
	Metadata getLogsMetaData `json:"metadata"`
}

type countResponse struct {
	Count int `json:"count"`
}

func parseLogOptions(c *gin.Context) (*logs.Options, apiError) {
	opt := &logs.Options{
		Where: c.Query("where"),
	}

	if v := c.Query("brief"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, wrapUserError(err, 400, "Fail to parse 'brief'")
		}
		opt.Brief = b
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, wrapUserError(err, 400, "Fail to parse 'limit'")
		}
		if n <= 0 {
			return nil, newUserErrorf(400, "'limit' must be positive, got %d", n)
		}
		opt.MaxLogs = n
	}

	if v := c.Query("proplist"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				opt.Proplist = append(opt.Proplist, p)
			}
		}
	}

	return opt, nil
}

func parseJQ(c *gin.Context) (*gojq.Query, apiError) {
	query := c.Query("query")
	if query == "" {
		return nil, nil
	}

	q, err := gojq.Parse(query)
	if err != nil {
		return nil, wrapUserError(err, 400, "Fail to parse query (invalid jq query)")
	}
	return q, nil
}

func filterByJQ(entries []logs.Entry, q *gojq.Query) ([]logs.Entry, apiError) {
	if q == nil {
		return entries, nil
	}

	var out []logs.Entry
	for _, entry := range entries {
		iter := q.Run(map[string]interface{}(entry))
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := v.(error); ok {
				return nil, wrapUserError(err, 400, "Fail to run jq query")
			}
			if v == nil {
				continue
			}

			switch r := v.(type) {
			case map[string]interface{}:
				out = append(out, logs.Entry(r))
			case bool:
				if r {
					out = append(out, entry)
				}
			default:
				out = append(out, logs.Entry{"": v})
			}
		}
	}

	return out, nil
}

func logsError(err error) apiError {
	switch err.(type) {
	case *logs.ConfigError:
		return wrapUserError(err, 400, "Invalid log query option")
	case *logs.RetrievalError:
		return wrapSystemError(err, 502, "Fail to retrieve logs from device")
	}

	return wrapUserError(err, 400, "Invalid filter expression")
}

func getLogs(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	opt, apiErr := parseLogOptions(c)
	if apiErr != nil {
		return nil, apiErr
	}

	jq, apiErr := parseJQ(c)
	if apiErr != nil {
		return nil, apiErr
	}

	if v := c.Query("count"); v != "" {
		count, err := strconv.ParseBool(v)
		if err != nil {
			return nil, wrapUserError(err, 400, "Fail to parse 'count'")
		}
		if count {
			n, err := args.Logs.Count(c.Request.Context(), *opt)
			if err != nil {
				return nil, logsError(err)
			}
			return &apiResponse{200, &countResponse{Count: n}}, nil
		}
	}

	var entries []logs.Entry
	var err error
	if buffer := c.Query("buffer"); buffer != "" {
		entries, err = args.Logs.GetFromBuffer(c.Request.Context(), buffer, *opt)
	} else {
		entries, err = args.Logs.Get(c.Request.Context(), *opt)
	}
	if err != nil {
		return nil, logsError(err)
	}

	entries, apiErr = filterByJQ(entries, jq)
	if apiErr != nil {
		return nil, apiErr
	}

	return &apiResponse{200, &logsResponse{
		Logs: entries,
		Metadata: getLogsMetaData{
			Total: len(entries),
			Limit: opt.MaxLogs,
		},
	}}, nil
}

func getLogsBySeverity(args Arguments, c *gin.Context) (*apiResponse, apiError) {
	severity := logs.Severity(c.Param("severity"))
	switch severity {
	case logs.SeverityDebug, logs.SeverityError, logs.SeverityWarning, logs.SeverityInfo:
	default:
		return nil, newUserErrorf(404, "Unknown log severity: %s", severity)
	}

	opt, apiErr := parseLogOptions(c)
	if apiErr != nil {
		return nil, apiErr
	}

	entries, err := args.Logs.GetBySeverity(c.Request.Context(), severity, *opt)
	if err != nil {
		return nil, logsError(err)
	}

	return &apiResponse{200, &logsResponse{
		Logs: entries,
		Metadata: getLogsMetaData{
			Total: len(entries),
			Limit: opt.MaxLogs,
		},
	}}, nil
}
