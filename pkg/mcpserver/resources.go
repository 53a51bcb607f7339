package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
)

func (x *Server) registerResources() {
	logResources := []struct {
		uri         string
		name        string
		description string
		fetch       func(ctx context.Context) ([]logs.Entry, error)
	}{
		{
			uri:         "mikrotik://logs/recent",
			name:        "recent_logs",
			description: "Recent MikroTik system logs with basic information",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.Get(ctx, logs.Options{Brief: true})
			},
		},
		{
			uri:         "mikrotik://logs/debug",
			name:        "debug_logs",
			description: "MikroTik debug logs for troubleshooting and development",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.GetDebug(ctx, logs.Options{})
			},
		},
		{
			uri:         "mikrotik://logs/error",
			name:        "error_logs",
			description: "MikroTik error logs for system monitoring and alerting",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.GetError(ctx, logs.Options{})
			},
		},
		{
			uri:         "mikrotik://logs/warning",
			name:        "warning_logs",
			description: "MikroTik warning logs for proactive system monitoring",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.GetWarning(ctx, logs.Options{})
			},
		},
		{
			uri:         "mikrotik://logs/info",
			name:        "info_logs",
			description: "MikroTik informational logs for general system status",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.GetInfo(ctx, logs.Options{})
			},
		},
		{
			uri:         "mikrotik://logs/detailed",
			name:        "detailed_logs",
			description: "Detailed MikroTik logs with extra information and metadata",
			fetch: func(ctx context.Context) ([]logs.Entry, error) {
				return x.logs.GetWithExtraInfo(ctx, logs.Options{})
			},
		},
	}

	for _, lr := range logResources {
		fetch := lr.fetch
		resource := mcp.NewResource(lr.uri, lr.name,
			mcp.WithResourceDescription(lr.description),
			mcp.WithMIMEType("application/json"),
		)
		x.mcp.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			entries, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			return jsonContents(request.Params.URI, entries)
		})
	}

	systemInfo := mcp.NewResource("mikrotik://system/info", "system_info",
		mcp.WithResourceDescription("Current system information and resource usage from the MikroTik device"),
		mcp.WithMIMEType("application/json"),
	)
	x.mcp.AddResource(systemInfo, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		info, err := x.device.SystemInfo(ctx)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, info)
	})
}

func jsonContents(uri string, v interface{}) ([]mcp.ResourceContents, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(raw),
		},
	}, nil
}
