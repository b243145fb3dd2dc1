package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cappuccinotm/usedesk-rss/app/cmd"
	"github.com/cappuccinotm/usedesk-rss/pkg/logx"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Opts describes cli commands, arguments and flags of the application.
type Opts struct {
	Server cmd.Server `command:"server" description:"run http server with the ticket update endpoint"`

	Debug bool `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
}

var version = "unknown"

func main() {
	fmt.Printf("usedesk-rss, version: %s\n", version)

	// variables from .env must be visible to the parser
	envErr := godotenv.Load()

	var opts Opts
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		logx.Setup(opts.Debug, os.Stdout)

		if envErr != nil {
			log.Printf("[DEBUG] .env is not loaded, using environment only: %v", envErr)
		}

		c := command.(cmd.CommonOptionsCommander)
		c.SetCommon(cmd.CommonOpts{Version: version, Logger: logx.Std()})

		if err := c.Execute(args); err != nil {
			log.Printf("[ERROR] failed to execute command %+v", err)
			return err
		}
		return nil
	}

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
