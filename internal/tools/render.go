package tools

import (
	"encoding/json"
	"fmt"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// textResult wraps a tool payload as a single pretty-printed text part.
func textResult(v any) (protocol.CallResult, *protocol.ResponseError) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32603, Message: fmt.Sprintf("encode result: %v", err)}
	}
	return protocol.CallResult{
		Content: []protocol.ContentPart{{Type: "text", Text: string(pretty)}},
	}, nil
}
