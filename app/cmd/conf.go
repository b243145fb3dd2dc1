package cmd

import (
	"net/http"
	"time"

	"github.com/cappuccinotm/usedesk-rss/app/relay"
	"github.com/cappuccinotm/usedesk-rss/app/usedesk"
	"github.com/cappuccinotm/usedesk-rss/pkg/logx"
)

// UseDeskOpts describes the connection to UseDesk. Shared by the server
// command and the serverless entrypoint, so env names don't have a namespace.
type UseDeskOpts struct {
	Token      string        `long:"token" env:"USEDESK_API_TOKEN" description:"api token of the usedesk channel"`
	RSSFieldID string        `long:"rss_field_id" env:"USEDESK_RSS_FIELD_ID" description:"default id of the ticket field for the rss link"`
	URL        string        `long:"url" env:"USEDESK_UPDATE_URL" default:"https://api.usedesk.ru/update/ticket" description:"usedesk ticket update endpoint"`
	Timeout    time.Duration `long:"timeout" env:"USEDESK_TIMEOUT" default:"10s" description:"timeout of a single request to usedesk"`
}

// Handler makes the ticket update handler over the options.
func (o UseDeskOpts) Handler(lg logx.Logger) *relay.Handler {
	if o.Token == "" {
		lg.Printf("[WARN] usedesk api token is not set, all updates will be rejected")
	}

	return &relay.Handler{
		Config: relay.Config{
			APIToken:       o.Token,
			DefaultFieldID: o.RSSFieldID,
		},
		Updater: usedesk.NewClient(usedesk.Params{
			URL:    o.URL,
			Client: &http.Client{Timeout: o.Timeout},
			Logger: logx.Prefixed(lg, "[usedesk]: "),
		}),
		Logger: logx.Prefixed(lg, "[relay]: "),
	}
}
