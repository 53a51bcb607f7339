package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (x *Server) registerSystemTools() {
	systemInfo := mcp.NewTool("get_system_info",
		mcp.WithDescription("Get current system information and resource usage from the MikroTik device"),
	)
	x.mcp.AddTool(systemInfo, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := x.device.SystemInfo(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(info)
	})

	systemResources := mcp.NewTool("get_system_resources",
		mcp.WithDescription("Get detailed system resource information from the MikroTik device"),
	)
	x.mcp.AddTool(systemResources, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resources, err := x.device.SystemResources(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(resources)
	})

	systemHealth := mcp.NewTool("get_system_health",
		mcp.WithDescription("Get system health metrics: memory and disk usage, CPU load and overall status"),
	)
	x.mcp.AddTool(systemHealth, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		health, err := x.device.SystemHealth(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(health)
	})

	testConnection := mcp.NewTool("test_connection",
		mcp.WithDescription("Test the connection to the MikroTik device and verify authentication"),
	)
	x.mcp.AddTool(testConnection, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if x.device.IsReachable(ctx) {
			return mcp.NewToolResultText("Connection to MikroTik device successful"), nil
		}
		return mcp.NewToolResultError("Connection to MikroTik device failed"), nil
	})
}
