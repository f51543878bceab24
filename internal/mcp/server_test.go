package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wxtools/weather-mcp-server/internal/app"
	"github.com/wxtools/weather-mcp-server/internal/mcp"
	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

func newTestServer() *mcp.Server {
	return app.NewServer(mcp.ServerInfo{Name: "weather-server", Version: "1.0.0"})
}

func handle(t *testing.T, req protocol.Request) *protocol.Response {
	t.Helper()
	return newTestServer().Handle(context.Background(), req)
}

func TestInitialize(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("result has unexpected shape: %T", resp.Result)
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}

	info, ok := result["serverInfo"].(map[string]string)
	if !ok || info["name"] != "weather-server" || info["version"] != "1.0.0" {
		t.Errorf("serverInfo = %v", result["serverInfo"])
	}

	caps, ok := result["capabilities"].(map[string]any)
	if !ok {
		t.Fatalf("capabilities has unexpected shape: %T", result["capabilities"])
	}
	for _, capability := range []string{"tools", "prompts"} {
		if _, declared := caps[capability]; !declared {
			t.Errorf("capability %q not declared", capability)
		}
	}
}

func TestToolsListNamesAndOrder(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(protocol.ListToolsResult)
	if !ok {
		t.Fatalf("result has unexpected shape: %T", resp.Result)
	}

	want := []string{"get_current_weather", "get_weather_forecast", "get_current_datetime"}
	if len(result.Tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(result.Tools), len(want))
	}
	for i, name := range want {
		if result.Tools[i].Name != name {
			t.Errorf("tool %d = %q, want %q", i, result.Tools[i].Name, name)
		}
	}
}

func TestToolsCallCurrentWeather(t *testing.T) {
	resp := handle(t, protocol.Request{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"get_current_weather","arguments":{"location":"Seattle, WA"}}`),
	})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ID != 7 {
		t.Errorf("id = %v, want 7", resp.ID)
	}

	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("result has unexpected shape: %T", resp.Result)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("unexpected content: %+v", result.Content)
	}
	if !json.Valid([]byte(result.Content[0].Text)) {
		t.Errorf("content text is not JSON: %q", result.Content[0].Text)
	}
	if !strings.Contains(result.Content[0].Text, "Seattle, WA") {
		t.Errorf("location missing from %q", result.Content[0].Text)
	}
}

func TestToolsCallUnknownToolKeepsID(t *testing.T) {
	resp := handle(t, protocol.Request{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"bogus"}`),
	})
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected an error response, got %+v", resp)
	}
	if resp.Error.Code != -1 {
		t.Errorf("code = %d, want -1", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "bogus") {
		t.Errorf("message = %q", resp.Error.Message)
	}
	if resp.ID != 3 {
		t.Errorf("id = %v, want 3", resp.ID)
	}
}

func TestToolsCallWithoutParams(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 4, Method: "tools/call"})
	if resp == nil || resp.Error == nil || resp.Error.Code != -1 {
		t.Fatalf("expected unknown-tool error, got %+v", resp)
	}
}

func TestToolsCallMalformedParams(t *testing.T) {
	resp := handle(t, protocol.Request{
		JSONRPC: "2.0",
		ID:      5,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	if resp == nil || resp.Error == nil || resp.Error.Code != -32603 {
		t.Fatalf("expected internal error, got %+v", resp)
	}
}

func TestUnknownMethod(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 9, Method: "resources/list"})
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected an error response, got %+v", resp)
	}
	if resp.Error.Code != -1 {
		t.Errorf("code = %d, want -1", resp.Error.Code)
	}
	if resp.ID != 9 {
		t.Errorf("id = %v, want 9", resp.ID)
	}
}

func TestNotificationsProduceNoReply(t *testing.T) {
	// No id at all.
	if resp := handle(t, protocol.Request{JSONRPC: "2.0", Method: "tools/list"}); resp != nil {
		t.Errorf("id-less request answered: %+v", resp)
	}
	// notifications/initialized never gets a reply, id or not.
	if resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 1, Method: "notifications/initialized"}); resp != nil {
		t.Errorf("notifications/initialized answered: %+v", resp)
	}
}

func TestInvalidJSONRPCVersion(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "1.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600, got %+v", resp)
	}
}

func TestPing(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 1, Method: "ping"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPromptsList(t *testing.T) {
	resp := handle(t, protocol.Request{JSONRPC: "2.0", ID: 1, Method: "prompts/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(protocol.ListPromptsResult)
	if !ok {
		t.Fatalf("result has unexpected shape: %T", resp.Result)
	}

	want := []string{"current_conditions", "forecast_briefing"}
	if len(result.Prompts) != len(want) {
		t.Fatalf("got %d prompts, want %d", len(result.Prompts), len(want))
	}
	for i, name := range want {
		if result.Prompts[i].Name != name {
			t.Errorf("prompt %d = %q, want %q", i, result.Prompts[i].Name, name)
		}
	}
}

func TestPromptsGet(t *testing.T) {
	resp := handle(t, protocol.Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "prompts/get",
		Params:  json.RawMessage(`{"name":"current_conditions","arguments":{"location":"Kyoto"}}`),
	})
	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(protocol.GetPromptResult)
	if !ok {
		t.Fatalf("result has unexpected shape: %T", resp.Result)
	}
	if len(result.Messages) != 1 || result.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages: %+v", result.Messages)
	}
	if !strings.Contains(result.Messages[0].Content.Text, "Kyoto") {
		t.Errorf("location missing from %q", result.Messages[0].Content.Text)
	}
}

func TestPromptsGetUnknownPrompt(t *testing.T) {
	resp := handle(t, protocol.Request{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "prompts/get",
		Params:  json.RawMessage(`{"name":"no_such_prompt"}`),
	})
	if resp == nil || resp.Error == nil || resp.Error.Code != -1 {
		t.Fatalf("expected -1, got %+v", resp)
	}
	if resp.ID != 2 {
		t.Errorf("id = %v, want 2", resp.ID)
	}
}
