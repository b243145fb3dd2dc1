package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/cappuccinotm/usedesk-rss/app/errs"
)

// Command is a validated request to put the RSS link into the ticket field.
type Command struct {
	TicketID string
	RSSURL   string
	FieldID  string
}

// payload is the inbound request body.
type payload struct {
	TicketID value `json:"ticket_id"`
	RSSURL   value `json:"rss_url"`
	FieldID  value `json:"field_id"`
}

// value is a scalar JSON value, decoded to its textual representation.
type value struct {
	Val     string
	Present bool // false when the key is absent or null
}

// UnmarshalJSON accepts strings, numbers and booleans.
func (v *value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = value{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = value{Val: s, Present: true}
		return nil
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return errs.ErrUnsupportedValType
	default:
		// numbers and booleans are kept as is
		*v = value{Val: string(b), Present: true}
		return nil
	}
}

// parseCommand decodes the body and validates the command.
// Empty body is considered to be an empty object, valid JSON of any other
// type than object carries no parameters.
func parseCommand(body []byte, defaultFieldID string) (Command, error) {
	var p payload

	if len(body) > 0 {
		if !json.Valid(body) {
			return Command{}, errs.ErrMalformedJSON
		}

		if trimmed := bytes.TrimSpace(body); trimmed[0] == '{' {
			if err := json.Unmarshal(trimmed, &p); err != nil {
				if errors.Is(err, errs.ErrUnsupportedValType) {
					return Command{}, errs.ErrUnsupportedValType
				}
				return Command{}, errs.ErrMalformedJSON
			}
		}
	}

	cmd := Command{
		TicketID: strings.TrimSpace(p.TicketID.Val),
		RSSURL:   strings.TrimSpace(p.RSSURL.Val),
		FieldID:  defaultFieldID,
	}

	if p.FieldID.Present {
		cmd.FieldID = strings.TrimSpace(p.FieldID.Val)
	}

	if cmd.TicketID == "" || cmd.RSSURL == "" {
		return Command{}, errs.ErrMissingParams
	}

	if cmd.FieldID == "" {
		return Command{}, errs.ErrMissingFieldID
	}

	return cmd, nil
}
