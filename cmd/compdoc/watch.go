package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gnana997/compdoc/pkg/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the component listing again whenever component files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, a, cmd, debounceMs)
		},
	}
	cmd.Flags().IntVar(&debounceMs, "debounce", int(watch.DefaultDebounce.Milliseconds()), "debounce window in milliseconds")
	return cmd
}

func runWatch(ctx context.Context, a *app, cmd *cobra.Command, debounceMs int) error {
	out := cmd.OutOrStdout()
	svc := a.service()

	printListing := func() {
		listing, _ := svc.ListComponents()
		fmt.Fprintln(out, listing)
	}

	w, err := watch.NewWatcher(a.cfg.Root, watch.Options{
		Scan:     a.cfg.ScanConfig(),
		Debounce: time.Duration(debounceMs) * time.Millisecond,
	}, func() {
		fmt.Fprintln(out)
		printListing()
	}, a.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	printListing()
	if err := w.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
