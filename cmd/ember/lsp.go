package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frerich/elixir/emberconfig"
	"github.com/frerich/elixir/lsp"
	"github.com/frerich/elixir/policy"
)

func lspCommand() *cli.Command {
	return &cli.Command{
		Name:   "lsp",
		Usage:  "Run the stdio LSP server (same implementation as ember-lsp)",
		Action: runLSP,
	}
}

func runLSP(ctx context.Context, _ *cli.Command) error {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	pol := loadLSPPolicy(logger)

	stream := jsonrpc2.NewStream(&rwc{os.Stdin, os.Stdout})
	conn := jsonrpc2.NewConn(stream)
	client := protocol.ClientDispatcher(conn, logger)

	server := lsp.NewServer(client, logger, pol)

	conn.Go(ctx, protocol.ServerHandler(server, nil))
	<-conn.Done()

	return conn.Err()
}

func loadLSPPolicy(logger *zap.Logger) *policy.Config {
	cfg, err := emberconfig.LoadConfig(".")
	if err != nil {
		return policy.DefaultConfig()
	}

	pol, err := cfg.CompilePolicy()
	if err != nil {
		logger.Warn("Failed to compile policy, falling back to allow-all", zap.Error(err))
		return policy.DefaultConfig()
	}

	return pol
}

type rwc struct {
	io.Reader
	io.Writer
}

func (c *rwc) Close() error {
	if closer, ok := c.Writer.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
