// Package mcpserver exposes the RouterOS read-only surface as a Model
// Context Protocol server: tools and resources for logs, system health,
// IP configuration, interfaces, firewall, DHCP, wireless and routing.
package mcpserver

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

// Logger can be modified by external for testing
var Logger = logrus.New()

const (
	serverName    = "mikrotik-routeros-server"
	serverVersion = "1.0.0"
)

// Server wires the device client into an MCP server instance.
type Server struct {
	mcp    *server.MCPServer
	device *routeros.Client
	logs   *logs.Client
}

// New builds the MCP server and registers every tool and resource.
func New(device *routeros.Client) *Server {
	x := &Server{
		mcp: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithLogging(),
			server.WithResourceCapabilities(false, true),
		),
		device: device,
		logs:   logs.New(device),
	}

	x.registerLogTools()
	x.registerSystemTools()
	x.registerNetworkTools()
	x.registerResources()

	return x
}

// ServeStdio runs the server over stdin/stdout until EOF.
func (x *Server) ServeStdio() error {
	Logger.Info("Starting MCP server on stdio")
	return server.ServeStdio(x.mcp)
}

// ServeSSE runs the server over HTTP server-sent events on the port of the
// given base URL.
func (x *Server) ServeSSE(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return err
	}

	sseServer := server.NewSSEServer(x.mcp, server.WithBaseURL(baseURL))
	Logger.WithField("port", u.Port()).Info("Starting MCP server on SSE")
	return sseServer.Start(fmt.Sprintf(":%s", u.Port()))
}

// jsonResult renders a tool result as indented JSON text.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// errResult surfaces a domain error to the caller verbatim. Filter syntax
// errors in particular must arrive unmodified so the expression can be
// corrected and resubmitted.
func errResult(err error) (*mcp.CallToolResult, error) {
	Logger.WithError(err).Debug("Tool call failed")
	return mcp.NewToolResultError(err.Error()), nil
}

func argString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argBool(args map[string]interface{}, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}

func argInt(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}
