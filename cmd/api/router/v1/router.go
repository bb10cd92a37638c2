package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Carthago1/chat-backend/internal/auth"
	cacheport "github.com/Carthago1/chat-backend/internal/infrastructure/cache/port"
	qport "github.com/Carthago1/chat-backend/internal/infrastructure/queue/port"
	"github.com/Carthago1/chat-backend/internal/infrastructure/realtime"
	"github.com/Carthago1/chat-backend/internal/pkg/chat/application/usecase"
	chathttp "github.com/Carthago1/chat-backend/internal/pkg/chat/presentation/http"
	userhttp "github.com/Carthago1/chat-backend/internal/pkg/user/presentation/http"
)

// Deps carries everything the API surface needs from the composition root.
type Deps struct {
	Pool        *pgxpool.Pool
	Cache       cacheport.Cache
	Queue       qport.Client
	Registry    *realtime.Registry
	Dispatcher  usecase.Deliverer
	Issuer      *auth.TokenIssuer
	AllowOrigin string
	Log         zerolog.Logger
}

// RegisterRoutes mounts all API routes under /api.
func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	api.Use(cors(d.AllowOrigin))

	authed := api.Group("")
	authed.Use(auth.Middleware(d.Issuer))

	userhttp.RegisterRoutes(api, authed, d.Pool, d.Cache, d.Issuer)
	chathttp.RegisterRoutes(api, authed, chathttp.Deps{
		Pool:        d.Pool,
		Queue:       d.Queue,
		Registry:    d.Registry,
		Dispatcher:  d.Dispatcher,
		Issuer:      d.Issuer,
		AllowOrigin: d.AllowOrigin,
		Log:         d.Log,
	})
}

func cors(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
