// Command ember-lsp is a Language Server Protocol server for the cursor
// classifier in package elixir.
package main

import (
	"context"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frerich/elixir/emberconfig"
	"github.com/frerich/elixir/lsp"
	"github.com/frerich/elixir/policy"
)

func main() {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting ember-lsp server")

	ctx := context.Background()

	if err := run(ctx, logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, in io.Reader, out io.Writer) error {
	pol := loadPolicy(logger)

	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)

	client := protocol.ClientDispatcher(conn, logger)
	server := lsp.NewServer(client, logger, pol)

	startConfigWatcher(ctx, logger, server)

	conn.Go(ctx, protocol.ServerHandler(server, nil))

	<-conn.Done()

	return conn.Err()
}

func loadPolicy(logger *zap.Logger) *policy.Config {
	cfg, err := emberconfig.LoadConfig(".")
	if err != nil {
		logger.Info("No .ember.yaml found, all context kinds allowed", zap.Error(err))
		return policy.DefaultConfig()
	}

	pol, err := cfg.CompilePolicy()
	if err != nil {
		logger.Warn("Failed to compile policy, falling back to allow-all", zap.Error(err))
		return policy.DefaultConfig()
	}

	return pol
}

func startConfigWatcher(ctx context.Context, logger *zap.Logger, server *lsp.Server) {
	path, err := emberconfig.FindConfig(".")
	if err != nil {
		return
	}

	watcher, err := emberconfig.NewWatcher(path, logger, func(cfg *emberconfig.Config) {
		pol, err := cfg.CompilePolicy()
		if err != nil {
			logger.Warn("Failed to recompile policy after reload", zap.Error(err))
			return
		}

		server.SetPolicy(pol)
	})
	if err != nil {
		logger.Warn("Failed to start config watcher", zap.Error(err))
		return
	}

	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Warn("Config watcher stopped", zap.Error(err))
		}
	}()
}

// readWriteCloser wraps separate reader/writer into io.ReadWriteCloser.
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	if c, ok := rwc.Writer.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
