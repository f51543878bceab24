package mcp

import (
	"fmt"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// Prompt defines the behavior of a single MCP prompt.
type Prompt interface {
	Descriptor() protocol.PromptDescriptor
	Render(args map[string]string) []protocol.PromptMessage
}

// Promptbook stores and expands prompts by name, mirroring Toolbox.
type Promptbook struct {
	order   []string
	prompts map[string]Prompt
}

// NewPromptbook constructs a promptbook with the provided prompts.
func NewPromptbook(prompts ...Prompt) *Promptbook {
	pb := &Promptbook{
		order:   make([]string, 0, len(prompts)),
		prompts: make(map[string]Prompt, len(prompts)),
	}
	for _, p := range prompts {
		desc := p.Descriptor()
		pb.order = append(pb.order, desc.Name)
		pb.prompts[desc.Name] = p
	}
	return pb
}

// Describe returns all prompt descriptors in registration order.
func (pb *Promptbook) Describe() []protocol.PromptDescriptor {
	list := make([]protocol.PromptDescriptor, 0, len(pb.order))
	for _, name := range pb.order {
		list = append(list, pb.prompts[name].Descriptor())
	}
	return list
}

// Render expands a named prompt with the given arguments.
func (pb *Promptbook) Render(name string, args map[string]string) (protocol.GetPromptResult, *protocol.ResponseError) {
	prompt, ok := pb.prompts[name]
	if !ok {
		return protocol.GetPromptResult{}, &protocol.ResponseError{Code: -1, Message: fmt.Sprintf("unknown prompt: %s", name)}
	}
	return protocol.GetPromptResult{
		Description: prompt.Descriptor().Description,
		Messages:    prompt.Render(args),
	}, nil
}
