package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Sample is one control message from a remote client.
//
// Deltas are applied as-is. A Gesture carries raw sensor coordinates in
// [0, 1]; each axis maps to a delta of 10 - 20v, so a hand centred over the
// sensor means no turn.
type Sample struct {
	Speed   float64  `json:"speed"`
	Roll    float64  `json:"roll"`
	Yaw     float64  `json:"yaw"`
	Gesture *Gesture `json:"gesture,omitempty"`
	Toggle  bool     `json:"toggle"`
	Quit    bool     `json:"quit"`
}

// Gesture is a hand position reported by a gesture sensor bridge.
type Gesture struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Input converts the sample to control input.
func (s Sample) Input() Input {
	in := Input{
		SpeedDelta:   s.Speed,
		YawDeltaX:    s.Roll,
		YawDeltaY:    s.Yaw,
		ToggleTrails: s.Toggle,
		Quit:         s.Quit,
	}
	if g := s.Gesture; g != nil {
		in.YawDeltaX += 10 - g.X*20
		in.YawDeltaY += 10 - g.Y*20
	}
	return in
}

// Feed accepts control samples over websocket connections and hands them to
// the frame loop through Poll. Samples arriving between two polls are merged.
type Feed struct {
	Logger *slog.Logger

	Buffer

	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  int
}

// NewFeed creates a feed that accepts connections from any origin.
func NewFeed(logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{
		Logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Clients returns the number of connected clients.
func (f *Feed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clients
}

// ServeHTTP upgrades the request and reads samples until the client goes away.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.Logger.Warn("control upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients++
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.clients--
		f.mu.Unlock()
	}()
	f.Logger.Info("control client connected", "remote", r.RemoteAddr)

	for {
		var s Sample
		if err := conn.ReadJSON(&s); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				f.Logger.Warn("control read failed", "remote", r.RemoteAddr, "err", err)
			}
			f.Logger.Info("control client disconnected", "remote", r.RemoteAddr)
			return
		}
		f.Push(s.Input())
	}
}

// ListenAndServe serves the feed on addr at /control until ctx is cancelled.
func (f *Feed) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/control", f)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	f.Logger.Info("control feed listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("control feed: %w", err)
	}
}
