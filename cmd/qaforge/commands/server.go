package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/server"
)

// ServerCmd starts the qaforge HTTP API server
var ServerCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Start the qaforge HTTP API server",
	Long:    `Launch the HTTP API that turns requirements into QA documentation. Generated artifacts land in the configured output directory and are served for download.`,
	RunE:    runServer,
}

var serverPortFlag int

func init() {
	ServerCmd.Flags().IntVarP(&serverPortFlag, "port", "p", 0, "Listen port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	port := config.GetServerPort()
	if serverPortFlag != 0 {
		port = serverPortFlag
	}

	printStartupBanner(port, cfg.Output.Dir)

	srv, err := server.NewServer(context.Background(), cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create server")
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed to start")
	case <-sigChan:
		// First Ctrl+C - graceful shutdown
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			// Second Ctrl+C - force immediate exit
			pterm.Warning.Println("\nForce shutdown - exiting immediately")
			os.Exit(1)
			return nil // unreachable
		}
	}
}
