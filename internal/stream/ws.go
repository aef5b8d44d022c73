package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-rug-detector/internal/constants"
	"github.com/aman-zulfiqar/solana-rug-detector/internal/models"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// LogStream is the primary feed provider: a logsSubscribe WebSocket
// subscription filtered to mentions of the Pump.fun program at confirmed
// commitment. The read loop only decodes and hands off; per-launch work
// happens downstream so a slow evaluation never blocks the socket.
type LogStream struct {
	wsURL   string
	program string
	dialer  *websocket.Dialer
	conn    *websocket.Conn
	logger  *logrus.Logger
}

// LogStreamConfig holds configuration for the WebSocket feed.
type LogStreamConfig struct {
	WSUrl   string
	Program string // base58 program address for the mentions filter
	Logger  *logrus.Logger
}

// NewLogStream creates a log stream. The program defaults to the Pump.fun
// launchpad.
func NewLogStream(cfg LogStreamConfig) *LogStream {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Program == "" {
		cfg.Program = constants.PumpFunProgram.String()
	}
	return &LogStream{
		wsURL:   cfg.WSUrl,
		program: cfg.Program,
		dialer:  websocket.DefaultDialer,
		logger:  cfg.Logger,
	}
}

// wsEnvelope covers both subscription confirmations and log notifications.
type wsEnvelope struct {
	ID     int         `json:"id"`
	Result interface{} `json:"result"`
	Method string      `json:"method"`
	Params *struct {
		Subscription int64 `json:"subscription"`
		Result       struct {
			Value struct {
				Signature string      `json:"signature"`
				Err       interface{} `json:"err"`
				Logs      []string    `json:"logs"`
			} `json:"value"`
		} `json:"result"`
	} `json:"params"`
}

// Connect dials the endpoint and establishes the subscription. A failure
// here is fatal to the caller; reconnects after a successful start are
// handled inside Start.
func (s *LogStream) Connect(ctx context.Context) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

func (s *LogStream) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial %s: %w", s.wsURL, err)
	}

	subscribeMsg := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "logsSubscribe",
		"params": []interface{}{
			map[string]interface{}{
				"mentions": []string{s.program},
			},
			map[string]interface{}{
				"commitment": constants.Commitment,
			},
		},
	}
	if err := conn.WriteJSON(subscribeMsg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("logsSubscribe: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"endpoint": s.wsURL,
		"program":  s.program,
	}).Info("log subscription established")

	return conn, nil
}

// Start consumes notifications until the context is cancelled. Dropped
// connections are redialed with capped exponential backoff and resubscribed;
// events missed while disconnected are gone (the feed makes no replay
// guarantee). Connect must have been called first.
func (s *LogStream) Start(ctx context.Context, out chan<- models.LaunchEvent) error {
	if s.conn == nil {
		if err := s.Connect(ctx); err != nil {
			return err
		}
	}
	defer func() {
		if s.conn != nil {
			s.conn.Close()
		}
	}()

	delay := reconnectBaseDelay
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var msg wsEnvelope
		if err := s.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.WithError(err).Warn("websocket read failed, reconnecting")
			s.conn.Close()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			if delay *= 2; delay > reconnectMaxDelay {
				delay = reconnectMaxDelay
			}

			conn, err := s.dial(ctx)
			if err != nil {
				s.logger.WithError(err).Warn("reconnect failed")
				continue
			}
			s.conn = conn
			delay = reconnectBaseDelay
			continue
		}

		if msg.Method != "logsNotification" || msg.Params == nil {
			// subscription ack or server-side notice
			continue
		}

		value := msg.Params.Result.Value
		if value.Err != nil {
			// failed transaction, nothing launched
			continue
		}

		event := models.LaunchEvent{
			Signature: value.Signature,
			Logs:      value.Logs,
		}
		select {
		case out <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
