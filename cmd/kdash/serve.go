package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/renato0307/kdash/internal/httpserver"
	"github.com/renato0307/kdash/internal/httpserver/handlers"
	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/workloads"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve services and workload summaries as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, opts, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", httpserver.DefaultListenAddr, "Address to listen on")

	return cmd
}

func runServer(ctx context.Context, opts *options, listen string) error {
	fetcher, contextName, err := opts.newFetcher()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	actions := workloads.NewActions()
	store := workloads.NewStore(actions)
	defer store.Close()

	poller := workloads.NewPoller(fetcher, actions, opts.namespace, opts.refresh)
	pollerDone := poller.Start(ctx)

	server := httpserver.New(listen, handlers.Deps{
		Fetcher:   fetcher,
		Store:     store,
		Refresher: poller,
		Context:   contextName,
		Namespace: opts.namespace,
		StartTime: time.Now(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Stop(shutdownCtx)
	}

	cancel()
	<-pollerDone
	logging.Info("server stopped")
	return err
}
