package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	cli "github.com/urfave/cli/v2"

	"github.com/routerops/mikrotik-mcp/internal"
	"github.com/routerops/mikrotik-mcp/pkg/api"
	"github.com/routerops/mikrotik-mcp/pkg/logs"
	"github.com/routerops/mikrotik-mcp/pkg/mcpserver"
	"github.com/routerops/mikrotik-mcp/pkg/routeros"
)

var logger = internal.Logger

type parameters struct {
	device    routeros.Config
	logLevel  string
	transport string
	addr      string
	port      int
}

func main() {
	var params parameters

	app := &cli.App{
		Name:  "mikrotik-mcp",
		Usage: "Read-only MikroTik RouterOS server for MCP clients and HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "host",
				Usage:       "RouterOS device address",
				Required:    true,
				EnvVars:     []string{"MIKROTIK_HOST"},
				Destination: &params.device.Host,
			},
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "RouterOS username",
				Required:    true,
				EnvVars:     []string{"MIKROTIK_USERNAME"},
				Destination: &params.device.Username,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "RouterOS password",
				EnvVars:     []string{"MIKROTIK_PASSWORD"},
				Destination: &params.device.Password,
			},
			&cli.IntFlag{
				Name:        "device-port",
				Usage:       "RouterOS REST port (default 80, or 443 with SSL)",
				EnvVars:     []string{"MIKROTIK_PORT"},
				Destination: &params.device.Port,
			},
			&cli.BoolFlag{
				Name:        "use-ssl",
				Usage:       "Use HTTPS for the RouterOS REST API",
				EnvVars:     []string{"MIKROTIK_USE_SSL"},
				Destination: &params.device.UseSSL,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "INFO",
				Usage:       "Log level [TRACE|DEBUG|INFO|WARN|ERROR]",
				EnvVars:     []string{"LOG_LEVEL"},
				Destination: &params.logLevel,
			},
		},
		Before: func(c *cli.Context) error {
			internal.SetLogLevel(params.logLevel)
			internal.InitErrorHandler()
			return nil
		},
		Commands: []*cli.Command{
			mcpCommand(&params),
			apiCommand(&params),
		},
	}

	defer internal.FlushError()

	if err := app.Run(os.Args); err != nil {
		internal.HandleError(err)
		logger.WithError(err).Fatal("Abort")
	}
}

func mcpCommand(params *parameters) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve MCP over stdio or SSE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "transport",
				Aliases:     []string{"t"},
				Value:       "stdio",
				Usage:       "Transport: 'stdio' or a base URL for SSE such as http://localhost:8089",
				EnvVars:     []string{"MCP_TRANSPORT"},
				Destination: &params.transport,
			},
		},
		Action: func(c *cli.Context) error {
			// stdout carries the protocol stream over stdio, keep all
			// logging on the stderr logger.
			mcpserver.Logger = logger
			routeros.Logger = logger
			logs.Logger = logger

			server := mcpserver.New(routeros.NewClient(params.device))

			if params.transport == "stdio" {
				return server.ServeStdio()
			}
			return server.ServeSSE(params.transport)
		},
	}
}

func apiCommand(params *parameters) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Serve the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Value:       "127.0.0.1",
				Usage:       "Bind address",
				Destination: &params.addr,
			},
			&cli.IntFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Value:       10080,
				Usage:       "Bind port number",
				Destination: &params.port,
			},
		},
		Action: func(c *cli.Context) error {
			device := routeros.NewClient(params.device)

			api.Logger = logger
			routeros.Logger = logger
			logs.Logger = logger

			r := gin.Default()
			api.SetupRoute(r.Group("/api/v1"), api.Arguments{
				Device: device,
				Logs:   logs.New(device),
			})

			return r.Run(fmt.Sprintf("%s:%d", params.addr, params.port))
		},
	}
}
