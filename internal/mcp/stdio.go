package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// ServeStdio reads newline-delimited JSON-RPC requests from r and writes one
// response per line to w until r is exhausted. Lines that do not decode are
// logged and dropped; without an id there is no way to address a reply.
// Requests are handled strictly in order, one at a time.
func ServeStdio(ctx context.Context, server *Server, r io.Reader, w io.Writer, logger *logrus.Entry) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			logger.WithError(err).Warn("dropping malformed request line")
			continue
		}

		resp := server.Handle(ctx, req)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request stream: %w", err)
	}
	return nil
}
