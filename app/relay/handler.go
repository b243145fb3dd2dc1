// Package relay provides the HTTP handler, which puts the RSS link, sent by
// the UseDesk ticket form, into the additional field of the ticket.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cappuccinotm/usedesk-rss/app/errs"
	"github.com/cappuccinotm/usedesk-rss/app/usedesk"
	"github.com/cappuccinotm/usedesk-rss/pkg/logx"
	"github.com/google/uuid"
)

// maxDetailsLen is the maximum number of characters of the upstream body
// to put into the error response.
const maxDetailsLen = 200

//go:generate rm -f updater_mock.go
//go:generate moq -out updater_mock.go -fmt goimports . Updater

// Updater updates ticket fields in UseDesk.
type Updater interface {
	UpdateField(ctx context.Context, upd usedesk.FieldUpdate) error
}

// Config describes the handler's settings, resolved once at the start.
type Config struct {
	APIToken       string
	DefaultFieldID string // used when field_id is not passed in the request
}

// Handler handles requests to update the RSS field of the ticket.
type Handler struct {
	Config  Config
	Updater Updater
	Logger  logx.Logger
}

type errorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}

// ServeHTTP validates the request and makes a single call to UseDesk.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	reqID := uuid.NewString()

	if err := h.handle(r, reqID); err != nil {
		h.logger().Printf("[WARN] request %s: failed to update ticket: %v", reqID, err)
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}

func (h *Handler) handle(r *http.Request, reqID string) error {
	if r.Method != http.MethodPost {
		return errs.ErrMethodNotAllowed
	}

	if h.Config.APIToken == "" {
		return errs.ErrNoToken
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.ErrMalformedJSON
	}

	cmd, err := parseCommand(body, h.Config.DefaultFieldID)
	if err != nil {
		return err
	}

	h.logger().Printf("[DEBUG] request %s: setting field %s of ticket %s to %q",
		reqID, cmd.FieldID, cmd.TicketID, cmd.RSSURL)

	return h.Updater.UpdateField(r.Context(), usedesk.FieldUpdate{
		APIToken: h.Config.APIToken,
		TicketID: cmd.TicketID,
		FieldID:  cmd.FieldID,
		Value:    cmd.RSSURL,
	})
}

// writeError maps the error to the response status and the message,
// shown to the user.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		eInput   errs.ErrInvalidInput
		eUnreach errs.ErrUpstreamUnreachable
		eAPI     errs.ErrUseDeskAPI
	)

	switch {
	case errors.Is(err, errs.ErrMethodNotAllowed):
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Метод не разрешён"})
	case errors.Is(err, errs.ErrNoToken):
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Не настроен USEDESK_API_TOKEN"})
	case errors.As(err, &eInput):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: inputMessage(eInput)})
	case errors.As(err, &eUnreach):
		details := eUnreach.Err.Error()
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "Ошибка при обращении к UseDesk",
			Details: &details,
		})
	case errors.As(err, &eAPI) && eAPI.Rejected():
		msg := eAPI.Message
		if msg == "" {
			msg = truncate(eAPI.Body, maxDetailsLen)
		}
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: msg})
	case errors.As(err, &eAPI):
		details := truncate(eAPI.Body, maxDetailsLen)
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "UseDesk вернул ошибку",
			Details: &details,
		})
	default:
		details := err.Error()
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "Ошибка при обращении к UseDesk",
			Details: &details,
		})
	}
}

func inputMessage(e errs.ErrInvalidInput) string {
	switch e {
	case errs.ErrMalformedJSON:
		return "Неверный JSON в теле запроса"
	case errs.ErrMissingFieldID:
		return "Не указан id поля для RSS. Задайте USEDESK_RSS_FIELD_ID или передайте field_id в URL формы."
	case errs.ErrUnsupportedValType:
		return "Параметры ticket_id, rss_url и field_id должны быть строками или числами"
	default:
		return "Нужны параметры ticket_id и rss_url"
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger().Printf("[WARN] failed to write response: %v", err)
	}
}

func (h *Handler) logger() logx.Logger {
	if h.Logger == nil {
		return logx.NopLogger()
	}
	return h.Logger
}

// truncate returns at most n first characters of s.
func truncate(s string, n int) string {
	runes := 0
	for i := range s {
		if runes == n {
			return s[:i]
		}
		runes++
	}
	return s
}
