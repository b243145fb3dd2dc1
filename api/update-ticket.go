// Package handler is the entrypoint for Vercel's Go runtime, serving
// /api/update-ticket.
package handler

import (
	"log"
	"net/http"
	"os"

	"github.com/cappuccinotm/usedesk-rss/app/cmd"
	"github.com/cappuccinotm/usedesk-rss/pkg/logx"
	"github.com/jessevdk/go-flags"
)

var updateTicket http.Handler

func init() {
	var opts struct {
		UseDesk cmd.UseDeskOpts `group:"usedesk"`
		Debug   bool            `long:"dbg" env:"DEBUG"`
	}

	// only defaults and environment are taken into account
	_, err := flags.NewParser(&opts, flags.IgnoreUnknown).ParseArgs([]string{})

	logx.Setup(opts.Debug, os.Stdout)
	if err != nil {
		log.Printf("[WARN] failed to parse options from environment: %v", err)
	}

	updateTicket = opts.UseDesk.Handler(logx.Std())
}

// Handler updates the RSS link field of the UseDesk ticket.
func Handler(w http.ResponseWriter, r *http.Request) {
	updateTicket.ServeHTTP(w, r)
}
