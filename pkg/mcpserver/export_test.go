package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (x *Server) Handle(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	return x.mcp.HandleMessage(ctx, raw)
}

var (
	SplitProplist      = splitProplist
	LogOptionsFromArgs = logOptionsFromArgs
	ArgInt             = argInt
)
