// Package server provides the HTTP server and routing for CivicPulse.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	"nhooyr.io/websocket"

	"github.com/cityble/civicpulse/internal/events"
)

const liveFeedWriteWait = 10 * time.Second

// LiveFeedHandler pushes freshly generated dashboard snapshots over a
// WebSocket. Frames are msgpack-encoded binary by default, the compact
// format the kiosk display client consumes; browsers can request
// ?format=json instead.
type LiveFeedHandler struct {
	bus *events.Bus
	log zerolog.Logger
}

// NewLiveFeedHandler creates a new live feed handler
func NewLiveFeedHandler(bus *events.Bus, log zerolog.Logger) *LiveFeedHandler {
	return &LiveFeedHandler{
		bus: bus,
		log: log.With().Str("component", "live_feed").Logger(),
	}
}

// ServeHTTP handles GET /api/live requests (WebSocket upgrade).
func (h *LiveFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	asJSON := r.URL.Query().Get("format") == "json"

	h.log.Info().Bool("json", asJSON).Msg("Live feed client connected")
	h.bus.Emit(events.ClientConnected, "live_feed", map[string]interface{}{"json": asJSON})
	defer h.bus.Emit(events.ClientDisconnected, "live_feed", nil)

	// Buffer to prevent blocking the bus; drop frames for slow consumers
	eventChan := make(chan *events.Event, 16)
	subID := h.bus.Subscribe(func(event *events.Event) {
		if event.Type != events.SnapshotRefreshed {
			return
		}
		select {
		case eventChan <- event:
		default:
		}
	})
	defer h.bus.Unsubscribe(subID)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.log.Info().Msg("Live feed client disconnected")
			return

		case event := <-eventChan:
			if err := h.writeFrame(ctx, conn, event, asJSON); err != nil {
				h.log.Debug().Err(err).Msg("Live feed write failed, closing connection")
				return
			}
		}
	}
}

func (h *LiveFeedHandler) writeFrame(ctx context.Context, conn *websocket.Conn, event *events.Event, asJSON bool) error {
	var (
		payload []byte
		msgType websocket.MessageType
		err     error
	)

	if asJSON {
		payload, err = json.Marshal(event)
		msgType = websocket.MessageText
	} else {
		payload, err = msgpack.Marshal(event)
		msgType = websocket.MessageBinary
	}
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, liveFeedWriteWait)
	defer cancel()
	return conn.Write(writeCtx, msgType, payload)
}
