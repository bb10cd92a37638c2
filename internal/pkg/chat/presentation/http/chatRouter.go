package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Carthago1/chat-backend/internal/auth"
	qport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
	"github.com/Carthago1/chat-backend/internal/infrastructure/realtime"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/presentation/controller"
)

// Deps bundles what the chat endpoints need from the composition root.
type Deps struct {
	Pool        *pgxpool.Pool
	Queue       qport.Client
	Registry    *realtime.Registry
	Dispatcher  usecase.Deliverer
	Issuer      *auth.TokenIssuer
	AllowOrigin string
	Log         zerolog.Logger
}

// RegisterRoutes registers chat-related HTTP endpoints under the given router
// group. It constructs per-endpoint controllers and binds them directly to
// routes. The websocket endpoint sits outside the auth middleware because it
// authenticates its own handshake.
func RegisterRoutes(g *gin.RouterGroup, authed *gin.RouterGroup, d Deps) {
	createCtl := controller.NewCreateChatController(d.Pool)
	listCtl := controller.NewListChatsController(d.Pool)
	getMsgCtl := controller.NewGetMessagesController(d.Pool)
	postMsgCtl := controller.NewPostMessageController(d.Pool, d.Dispatcher, d.Log)
	socketCtl := controller.NewChatSocketController(d.Registry, d.Issuer, d.AllowOrigin, d.Log)

	// POST /api/chats -> open a conversation with another user
	authed.POST("/chats", createCtl.Handle())

	// GET /api/chats -> the caller's conversations
	authed.GET("/chats", listCtl.Handle())

	// GET /api/chats/:chatId/messages -> conversation history
	authed.GET("/chats/:chatId/messages", getMsgCtl.Handle())

	// POST /api/chats/:chatId/messages -> persist a message, then deliver live
	authed.POST("/chats/:chatId/messages", postMsgCtl.Handle())

	// POST /api/chats/:chatId/messages/queued -> background ingestion
	if d.Queue != nil {
		queueCtl := controller.NewQueueMessageController(d.Queue)
		authed.POST("/chats/:chatId/messages/queued", queueCtl.Handle())
	}

	// GET /api/chats/ws -> websocket endpoint for live delivery
	g.GET("/chats/ws", socketCtl.Handle())
}
