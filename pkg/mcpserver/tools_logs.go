package mcpserver

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
)

func logOptionsFromArgs(args map[string]interface{}) logs.Options {
	return logs.Options{
		Brief:    argBool(args, "brief"),
		Where:    argString(args, "where"),
		MaxLogs:  argInt(args, "maxLogs"),
		Proplist: splitProplist(argString(args, "proplist")),
	}
}

func splitProplist(raw string) []string {
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func (x *Server) registerLogTools() {
	getLogs := mcp.NewTool("get_logs",
		mcp.WithDescription("Retrieve MikroTik system logs with optional filtering and formatting options"),
		mcp.WithString("where",
			mcp.Description(`Filter expression, e.g. topics~"dhcp" and message~"assigned". Operators: = != ~ (substring); combine with and/or/not and parentheses. Fields: time, topics, message, buffer.`),
		),
		mcp.WithBoolean("brief",
			mcp.Description("Return only time, topics and message per record"),
		),
		mcp.WithBoolean("countOnly",
			mcp.Description("Return only the count of matching logs"),
		),
		mcp.WithNumber("maxLogs",
			mcp.DefaultNumber(logs.DefaultMaxLogs),
			mcp.Description("Maximum number of logs to return"),
		),
		mcp.WithString("proplist",
			mcp.Description("Comma separated list of fields to return (time, topics, message, buffer, extra)"),
		),
	)
	x.mcp.AddTool(getLogs, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		opts := logOptionsFromArgs(args)

		if argBool(args, "countOnly") {
			count, err := x.logs.Count(ctx, opts)
			if err != nil {
				return errResult(err)
			}
			return jsonResult(map[string]int{"count": count})
		}

		entries, err := x.logs.Get(ctx, opts)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(entries)
	})

	severityTools := []struct {
		name        string
		description string
		severity    logs.Severity
	}{
		{"get_debug_logs", "Retrieve MikroTik debug logs for troubleshooting and development purposes", logs.SeverityDebug},
		{"get_error_logs", "Retrieve MikroTik error logs for system monitoring and alerting", logs.SeverityError},
		{"get_warning_logs", "Retrieve MikroTik warning logs for proactive system monitoring", logs.SeverityWarning},
		{"get_info_logs", "Retrieve MikroTik informational logs for general system status", logs.SeverityInfo},
	}
	for _, st := range severityTools {
		severity := st.severity
		tool := mcp.NewTool(st.name,
			mcp.WithDescription(st.description),
			mcp.WithString("where",
				mcp.Description("Additional filter expression, combined with the severity constraint"),
			),
			mcp.WithNumber("maxLogs",
				mcp.DefaultNumber(logs.DefaultMaxLogs),
				mcp.Description("Maximum number of logs to return"),
			),
		)
		x.mcp.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			entries, err := x.logs.GetBySeverity(ctx, severity, logOptionsFromArgs(request.Params.Arguments))
			if err != nil {
				return errResult(err)
			}
			return jsonResult(entries)
		})
	}

	fromBuffer := mcp.NewTool("get_logs_from_buffer",
		mcp.WithDescription("Retrieve logs from a specific memory buffer on the MikroTik device"),
		mcp.WithString("bufferName",
			mcp.Required(),
			mcp.Description("Name of the buffer to read from"),
		),
		mcp.WithString("where",
			mcp.Description("Additional filter expression, combined with the buffer constraint"),
		),
		mcp.WithBoolean("brief",
			mcp.Description("Return only time, topics and message per record"),
		),
		mcp.WithNumber("maxLogs",
			mcp.DefaultNumber(logs.DefaultMaxLogs),
			mcp.Description("Maximum number of logs to return"),
		),
	)
	x.mcp.AddTool(fromBuffer, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments
		bufferName := argString(args, "bufferName")
		if bufferName == "" {
			return mcp.NewToolResultError("bufferName is required"), nil
		}

		entries, err := x.logs.GetFromBuffer(ctx, bufferName, logOptionsFromArgs(args))
		if err != nil {
			return errResult(err)
		}
		return jsonResult(entries)
	})

	withExtra := mcp.NewTool("get_logs_with_extra_info",
		mcp.WithDescription("Retrieve MikroTik logs with additional metadata and context information"),
		mcp.WithString("where",
			mcp.Description("Filter expression"),
		),
		mcp.WithNumber("maxLogs",
			mcp.DefaultNumber(logs.DefaultMaxLogs),
			mcp.Description("Maximum number of logs to return"),
		),
	)
	x.mcp.AddTool(withExtra, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := x.logs.GetWithExtraInfo(ctx, logOptionsFromArgs(request.Params.Arguments))
		if err != nil {
			return errResult(err)
		}
		return jsonResult(entries)
	})
}
