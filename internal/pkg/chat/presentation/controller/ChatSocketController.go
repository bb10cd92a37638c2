package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Carthago1/chat-backend/internal/auth"
	"github.com/Carthago1/chat-backend/internal/infrastructure/realtime"
)

// ChatSocketController owns the websocket endpoint. Its only job is presence:
// authenticate the handshake, register the connection in the registry, and
// unregister it when the socket dies. Messages are posted over HTTP and
// pushed to this socket by the delivery dispatcher.
type ChatSocketController struct {
	registry *realtime.Registry
	issuer   *auth.TokenIssuer
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewChatSocketController(registry *realtime.Registry, issuer *auth.TokenIssuer, allowOrigin string, log zerolog.Logger) *ChatSocketController {
	return &ChatSocketController{
		registry: registry,
		issuer:   issuer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowOrigin
			},
		},
		log: log,
	}
}

type ackFrame struct {
	Type string `json:"type"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades the HTTP connection, registers presence for the
// authenticated user and blocks until the client disconnects.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The handshake authenticates via query parameter; browsers cannot
		// set headers on websocket upgrades.
		userID, err := ctl.issuer.Verify(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just return.
			return
		}

		conn := realtime.NewConnection(userID, ws)
		conn.Start()

		// Last connection wins. The registry only swaps the entry; closing
		// the displaced socket is this transport layer's job.
		if previous := ctl.registry.Register(userID, conn); previous != nil {
			if pc, ok := previous.(*realtime.Connection); ok {
				pc.Close(4001, "session replaced")
			}
		}
		ctl.log.Debug().Int64("user_id", userID).Str("session", conn.SessionID()).Msg("connected")

		defer func() {
			// Handle-matched: if this user reconnected meanwhile, the newer
			// registration survives this deferred unregister.
			ctl.registry.Unregister(userID, conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
			ctl.log.Debug().Int64("user_id", userID).Str("session", conn.SessionID()).Msg("disconnected")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		// Drain the socket: inbound frames carry no commands, reading only
		// detects disconnects and keeps the deadline fresh.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
					!errors.Is(err, websocket.ErrCloseSent) {
					ctl.log.Debug().Err(err).Int64("user_id", userID).Msg("socket read ended")
				}
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		}
	}
}
