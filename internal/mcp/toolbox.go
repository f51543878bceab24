package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name. It is built once at startup
// and never mutated; Describe always lists tools in registration order.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{
		order: make([]string, 0, len(tools)),
		tools: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		desc := t.Descriptor()
		tb.order = append(tb.order, desc.Name)
		tb.tools[desc.Name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -1, Message: fmt.Sprintf("unknown tool: %s", name)}
	}
	return tool.Invoke(ctx, args)
}
