package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// NewHTTPHandler builds an HTTP front end for the server. Clients POST a
// single JSON-RPC request to the root path per call.
func NewHTTPHandler(server *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var rpcReq protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&rpcReq); err != nil {
			writeJSON(w, protocol.Response{JSONRPC: "2.0", Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp := server.Handle(req.Context(), rpcReq)
		if resp == nil {
			// Notification: acknowledged, nothing to say.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, *resp, http.StatusOK)
	})

	return r
}

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests via POST.
func RunHTTP(server *Server, addr string, logger *logrus.Entry) error {
	logger.Infof("HTTP MCP server listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(server),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
