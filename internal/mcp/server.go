package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// ServerInfo is the metadata reported by initialize.
type ServerInfo struct {
	Name    string
	Version string
}

// Server handles MCP JSON-RPC requests against a toolbox and promptbook.
type Server struct {
	toolbox    *Toolbox
	promptbook *Promptbook
	info       ServerInfo
}

// NewServer wires registries and metadata into an MCP server.
func NewServer(tb *Toolbox, pb *Promptbook, info ServerInfo) *Server {
	return &Server{toolbox: tb, promptbook: pb, info: info}
}

// Handle routes a single request. A nil return means the request was a
// notification and must not be answered. Any panic during dispatch is
// converted to an internal-error response, so a well-formed request can
// never take down the transport loop.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (resp *protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			if req.ID == nil {
				resp = nil
				return
			}
			resp = s.fail(req.ID, -32603, fmt.Sprintf("internal error: %v", r))
		}
	}()

	// A missing or null id marks a notification. There is no per-request
	// state to update, so the only work is deciding not to reply.
	if req.ID == nil || req.Method == "notifications/initialized" {
		return nil
	}

	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return s.fail(req.ID, -32600, "invalid jsonrpc version")
	}

	switch req.Method {
	case "initialize":
		return s.result(req.ID, map[string]any{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]any{
				"tools":   map[string]any{},
				"prompts": map[string]any{},
			},
			"serverInfo": map[string]string{
				"name":    s.info.Name,
				"version": s.info.Version,
			},
		})
	case "ping":
		return s.result(req.ID, map[string]any{})
	case "tools/list":
		return s.result(req.ID, protocol.ListToolsResult{Tools: s.toolbox.Describe()})
	case "tools/call":
		var params protocol.CallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return s.fail(req.ID, -32603, fmt.Sprintf("internal error: decode params: %v", err))
			}
		}
		result, toolErr := s.toolbox.Call(ctx, params.Name, params.Args)
		if toolErr != nil {
			return &protocol.Response{JSONRPC: "2.0", ID: req.ID, Error: toolErr}
		}
		return s.result(req.ID, result)
	case "prompts/list":
		return s.result(req.ID, protocol.ListPromptsResult{Prompts: s.promptbook.Describe()})
	case "prompts/get":
		var params protocol.GetPromptParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return s.fail(req.ID, -32603, fmt.Sprintf("internal error: decode params: %v", err))
			}
		}
		result, promptErr := s.promptbook.Render(params.Name, params.Arguments)
		if promptErr != nil {
			return &protocol.Response{JSONRPC: "2.0", ID: req.ID, Error: promptErr}
		}
		return s.result(req.ID, result)
	default:
		return s.fail(req.ID, -1, fmt.Sprintf("unknown method: %s", req.Method))
	}
}

func (s *Server) result(id any, result any) *protocol.Response {
	return &protocol.Response{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) fail(id any, code int, message string) *protocol.Response {
	return &protocol.Response{JSONRPC: "2.0", ID: id, Error: &protocol.ResponseError{Code: code, Message: message}}
}
