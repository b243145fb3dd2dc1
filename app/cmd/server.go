package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

// UpdateTicketPath is the path of the ticket update endpoint.
const UpdateTicketPath = "/api/update-ticket"

// Server runs the http server with the ticket update endpoint.
type Server struct {
	Addr    string      `long:"addr" env:"ADDR" default:":8080" description:"local address to listen"`
	UseDesk UseDeskOpts `group:"usedesk" namespace:"usedesk"`
	CommonOpts
}

// Execute runs the command
func (s Server) Execute(_ []string) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sig)
		select {
		case sig := <-sig:
			s.Logger.Printf("[WARN] caught signal %s, stopping", sig)
			stop()
			return ErrInterrupted
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	eg.Go(func() error {
		s.Logger.Printf("[INFO] listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped running, reason: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.Logger.Printf("[WARN] failed to shutdown http server: %v", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, ErrInterrupted) {
		return err
	}

	return nil
}

func (s Server) routes() http.Handler {
	r := mux.NewRouter()
	// all methods go to the handler, it responds to preflight and
	// rejects the rest by itself
	r.Handle(UpdateTicketPath, s.UseDesk.Handler(s.Logger))
	return r
}
