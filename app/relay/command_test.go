package relay

import (
	"testing"

	"github.com/cappuccinotm/usedesk-rss/app/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		defaultField string
		want         Command
		wantErr      error
	}{
		{
			name:    "empty body",
			body:    "",
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "empty object",
			body:    "{}",
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "not a json",
			body:    "not-json",
			wantErr: errs.ErrMalformedJSON,
		},
		{
			name:    "whitespace only",
			body:    "   ",
			wantErr: errs.ErrMalformedJSON,
		},
		{
			name:    "json array",
			body:    `[{"ticket_id":"1"}]`,
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "json null",
			body:    `null`,
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "missing rss url",
			body:    `{"ticket_id":"123","field_id":"1"}`,
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "blank ticket id",
			body:    `{"ticket_id":"   ","rss_url":"http://x/feed.xml","field_id":"1"}`,
			wantErr: errs.ErrMissingParams,
		},
		{
			name:    "zero ticket id is kept",
			body:    `{"ticket_id":0,"rss_url":"http://x/feed.xml","field_id":"1"}`,
			want:    Command{TicketID: "0", RSSURL: "http://x/feed.xml", FieldID: "1"},
			wantErr: nil,
		},
		{
			name:    "no field id anywhere",
			body:    `{"ticket_id":"123","rss_url":"http://x/feed.xml"}`,
			wantErr: errs.ErrMissingFieldID,
		},
		{
			name:         "field id from config",
			body:         `{"ticket_id":"123","rss_url":"http://x/feed.xml"}`,
			defaultField: "77",
			want:         Command{TicketID: "123", RSSURL: "http://x/feed.xml", FieldID: "77"},
		},
		{
			name:         "null field id falls back to config",
			body:         `{"ticket_id":"123","rss_url":"http://x/feed.xml","field_id":null}`,
			defaultField: "77",
			want:         Command{TicketID: "123", RSSURL: "http://x/feed.xml", FieldID: "77"},
		},
		{
			name:         "blank field id overrides config",
			body:         `{"ticket_id":"123","rss_url":"http://x/feed.xml","field_id":"  "}`,
			defaultField: "77",
			wantErr:      errs.ErrMissingFieldID,
		},
		{
			name:         "numbers and trimming",
			body:         ` {"ticket_id": 123, "rss_url": "  http://x/feed.xml\n", "field_id": 42} `,
			defaultField: "77",
			want:         Command{TicketID: "123", RSSURL: "http://x/feed.xml", FieldID: "42"},
		},
		{
			name:    "object value",
			body:    `{"ticket_id":{"id":1},"rss_url":"http://x/feed.xml","field_id":"1"}`,
			wantErr: errs.ErrUnsupportedValType,
		},
		{
			name:    "unknown fields are ignored",
			body:    `{"ticket_id":"1","rss_url":"u","field_id":"2","extra":[1,2]}`,
			want:    Command{TicketID: "1", RSSURL: "u", FieldID: "2"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parseCommand([]byte(tt.body), tt.defaultField)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}
}
