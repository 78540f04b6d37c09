package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/form"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

var _ types.Server = &CalculatorServer{}

const shutdownTimeout = 5 * time.Second

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	evaluator *calc.Evaluator
	forms     *form.Manager
	config    types.Config
	logger    *slog.Logger

	stdin  io.Reader
	stdout io.Writer
}

// NewCalculatorServer creates a new calculator MCP server with all tools registered
func NewCalculatorServer(config types.Config, logger *slog.Logger) (*CalculatorServer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if logger == nil {
		logger = slog.Default()
	}

	locale, err := calc.ParseLocale(config.Locale)
	if err != nil {
		return nil, err
	}

	evaluator := calc.NewEvaluator(locale, logger)
	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		evaluator: evaluator,
		forms:     form.NewManager(evaluator, config.MaxSessions, logger),
		config:    config,
		logger:    logger.With("component", "server.CalculatorServer"),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
	s.registerTools()

	return s, nil
}

func (s *CalculatorServer) registerTools() {
	for _, tool := range tools.All(s.evaluator, s.forms) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

// Serve runs the configured transport until ctx is cancelled
func (s *CalculatorServer) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting calculator MCP server",
		"version", project.Version,
		"transport", s.config.Transport,
		"locale", s.evaluator.Parser().Locale().String(),
	)

	switch strings.ToLower(s.config.Transport) {
	case types.TransportSSE:
		return s.serveSSE(ctx)
	default:
		return s.serveStdio(ctx)
	}
}

func (s *CalculatorServer) serveStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdio.Listen(ctx, s.stdin, s.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "failed to serve MCP server over stdio")
	}
	return nil
}

func (s *CalculatorServer) serveSSE(ctx context.Context) error {
	var opts []server.SSEOption
	if s.config.BaseURL != "" {
		opts = append(opts, server.WithBaseURL(s.config.BaseURL))
	}
	sse := server.NewSSEServer(s.mcpServer, opts...)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(s.config.Address)
	}()
	s.logger.InfoContext(ctx, "listening for SSE clients", "address", s.config.Address)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to serve MCP server over SSE")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sse.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down SSE server")
	}
	return nil
}
