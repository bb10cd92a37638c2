package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Carthago1/chat-backend/internal/auth"
	cacheport "github.com/Carthago1/chat-backend/internal/infrastructure/cache/port"
	"github.com/Carthago1/chat-backend/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers auth and user endpoints. Registration and login
// are public; search and whoami require a valid token.
func RegisterRoutes(public *gin.RouterGroup, authed *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, issuer *auth.TokenIssuer) {
	registerCtl := controller.NewRegisterController(pool)
	loginCtl := controller.NewLoginController(pool, issuer)
	searchCtl := controller.NewSearchUsersController(pool)
	meCtl := controller.NewGetMeController(pool, cache)

	// POST /api/auth/register, POST /api/auth/login
	public.POST("/auth/register", registerCtl.Handle())
	public.POST("/auth/login", loginCtl.Handle())

	// GET /api/users/search?username=<prefix>, GET /api/users/me
	authed.GET("/users/search", searchCtl.Handle())
	authed.GET("/users/me", meCtl.Handle())
}
