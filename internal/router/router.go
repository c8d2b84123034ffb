package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/basilogast/portfolio-server/internal/handler"
)

const sessionCookieName = "portfolio_session"

// Options carries the dependencies and settings the router needs.
type Options struct {
	API            *handler.API
	SessionSecret  string
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// SetupRouter configures the Gin engine, middleware stack and routes.
func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(opts.Logger))

	// The frontend sends session cookies cross-origin, so credentials stay
	// enabled and origins come from an explicit allow-list.
	if len(opts.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = opts.AllowedOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
		r.Use(cors.New(corsConfig))
	}

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(sessionCookieName, store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/:table", opts.API.ListRecords)
		api.POST("/:table", opts.API.CreateRecord)
		api.GET("/:table/:id", opts.API.GetRecord)
		api.PUT("/:table/:id", opts.API.UpdateRecord)
		api.DELETE("/:table/:id", opts.API.DeleteRecord)
	}

	r.POST("/upload", opts.API.UploadAsset)
	r.POST("/contact", opts.API.SubmitContact)
	r.POST("/logout", opts.API.Logout)

	return r
}

// requestLogger tags every request with an id and emits one structured
// access log entry per request.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger == nil {
			c.Next()
			return
		}

		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request completed")
	}
}
