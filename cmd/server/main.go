// crawler-server hosts the dungeon crawler over SSH. Every connection gets
// its own dungeon. Build:
//
//	go build -o crawler-server ./cmd/server
//
// Usage:
//
//	./crawler-server [--port 2222] [--key server_host_key] [--config crawler.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"room-crawler/internal/config"
	"room-crawler/internal/logging"
	"room-crawler/internal/server"
)

var (
	port       int
	keyFile    string
	configPath string
	verbose    bool
	devLog     bool
)

var rootCmd = &cobra.Command{
	Use:          "crawler-server",
	Short:        "Serve the dungeon crawler over SSH",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().IntVarP(&port, "port", "p", 2222, "SSH server port")
	rootCmd.Flags().StringVar(&keyFile, "key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config, reloaded for new sessions when it changes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&devLog, "dev", false, "Human-readable log output")
}

func runServer(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logging.Options{Verbose: verbose, Development: devLog})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	signer, err := server.LoadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}
	srv := server.New(fmt.Sprintf(":%d", port), cfg, signer, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	var w *config.Watcher
	if configPath != "" {
		if w, err = config.NewWatcher(configPath, logger, srv.SetConfig); err != nil {
			return err
		}
	}

	g.Go(func() error { return srv.ListenAndServe(ctx) })
	if w != nil {
		g.Go(func() error { return w.Run(ctx) })
	}

	logger.Info("connect with ssh", zap.String("command", fmt.Sprintf("ssh -t -p %d localhost", port)))
	return g.Wait()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
