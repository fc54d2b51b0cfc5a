// Package rpc exposes the repair engine over JSON-RPC 2.0 on stdio, for
// editor/tool integrations that want a long-lived repair process instead of
// shelling out per call. Uses go.lsp.dev/jsonrpc2 directly — without
// go.lsp.dev/protocol, since this isn't an LSP server and has no need for
// its textDocument/* method set.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

// MethodRepair is the single JSON-RPC method this service exposes.
const MethodRepair = "repair"

// RepairParams is the request payload for the "repair" method.
type RepairParams struct {
	Text   string `json:"text"`
	DryRun bool   `json:"dry_run"`
}

// Server runs a repair engine behind a JSON-RPC 2.0 connection over stdio.
type Server struct {
	Engine *repair.Repair
	Logger *zap.SugaredLogger
}

// NewServer builds a Server. Pass a nop logger if none is configured.
func NewServer(engine *repair.Repair, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Server{Engine: engine, Logger: logger}
}

// Run serves JSON-RPC requests over stdin/stdout until ctx is canceled or
// the stream closes.
func (s *Server) Run(ctx context.Context) error {
	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn.Go(ctx, s.handler())

	select {
	case <-ctx.Done():
		return conn.Close()
	case <-conn.Done():
		if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.Logger.Debugw("rpc request", "method", req.Method())

		if req.Method() != MethodRepair {
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}

		var params RepairParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, &jsonrpc2.Error{
				Code:    jsonrpc2.InvalidParams,
				Message: "failed to parse repair params",
			})
		}

		report := s.Engine.Parse(params.Text, params.DryRun)
		return reply(ctx, report, nil)
	}
}

// stdrwc adapts stdin/stdout to io.ReadWriteCloser.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
