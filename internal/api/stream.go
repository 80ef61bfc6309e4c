package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/logger"
	"github.com/guttosm/tickerboard/internal/middleware"
	"github.com/guttosm/tickerboard/internal/service"
)

const (
	streamWriteWait      = 10 * time.Second
	maxSelectMessageSize = 4 << 10
)

// Stream handles GET /api/v1/dashboard/stream.
//
// The connection is upgraded to a websocket and owns one DashboardState. The
// client sends {"ticker":"TSLA"} to change the selection; the server pushes a
// StreamUpdate on connect, after every selection and on every timer tick.
//
// Stream godoc
// @Summary      Live dashboard stream
// @Description  Websocket pushing rendered views on selection changes and every refresh period
// @Tags         dashboard
// @Success      101
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/dashboard/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	if !c.IsWebsocket() {
		middleware.AbortWithError(c, http.StatusBadRequest, "websocket upgrade required", nil)
		return
	}

	conn, _, _, err := ws.UpgradeHTTP(c.Request, c.Writer)
	if err != nil {
		logger.L().Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()
	// the server's ReadTimeout still applies to the hijacked conn
	_ = conn.SetReadDeadline(time.Time{})

	s := &streamSession{
		conn:     conn,
		svc:      h.svc,
		validate: h.normalizeTicker,
		interval: h.refresh,
	}
	s.run(c.Request.Context(), models.NewDashboardState(h.defaultTicker()))
}

// streamEvent is what the read side hands to the session loop.
type streamEvent struct {
	ticker  string
	problem string // non-empty when the client message was rejected
}

type streamSession struct {
	conn     net.Conn
	svc      service.DashboardService
	validate func(string) (string, bool)
	interval time.Duration
}

// run is the session loop. Selections and timer ticks are handled one at a time;
// a trigger arriving during a fetch waits for it to finish.
func (s *streamSession) run(ctx context.Context, state models.DashboardState) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan streamEvent)
	go s.readLoop(ctx, events)

	timer := time.NewTicker(s.interval)
	defer timer.Stop()

	if err := s.push(ctx, state); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.problem != "" {
				if err := s.write(dto.StreamUpdate{Type: "error", Ticker: state.Ticker, Tick: state.Tick, Message: ev.problem}); err != nil {
					return
				}
				continue
			}
			state.Select(ev.ticker)
		case <-timer.C:
			state.Advance()
		}

		if err := s.push(ctx, state); err != nil {
			return
		}
	}
}

func (s *streamSession) readLoop(ctx context.Context, events chan<- streamEvent) {
	defer close(events)

	for {
		payload, op, err := wsutil.ReadClientData(s.conn)
		if err != nil {
			return
		}
		if op != ws.OpText {
			continue
		}

		var ev streamEvent
		var msg dto.StreamSelect
		switch {
		case len(payload) > maxSelectMessageSize:
			ev.problem = "message too large"
		case json.Unmarshal(payload, &msg) != nil:
			ev.problem = "invalid JSON"
		default:
			ticker, ok := s.validate(msg.Ticker)
			if !ok {
				ev.problem = "unsupported ticker " + ticker
			} else {
				ev.ticker = ticker
			}
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (s *streamSession) push(ctx context.Context, state models.DashboardState) error {
	metrics, chart := s.svc.OnTrigger(ctx, state)
	return s.write(dto.StreamUpdate{
		Type:    "update",
		Ticker:  state.Ticker,
		Tick:    state.Tick,
		Metrics: metrics,
		Chart:   chart,
	})
}

func (s *streamSession) write(msg dto.StreamUpdate) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return wsutil.WriteServerText(s.conn, b)
}
