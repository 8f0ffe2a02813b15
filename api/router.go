// Package api contains all endpoints available
package api

import (
	"fmt"
	"jobtrackr/api/db"
	"jobtrackr/api/internal/service"
	"jobtrackr/api/pkg/middleware"
	"jobtrackr/api/pkg/security"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Mail   service.Mailer
}

// NewRouter wires the production API: real database, real SMTP mailer,
// background reset-token cleanup attached.
func NewRouter() (*API, error) {
	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	a := New(d, service.SMTPMailer{})

	service.ResetTokenCleanup(time.Minute*time.Duration(viper.GetInt("reset.cleanup_minutes")), d)

	return a, nil
}

// New builds the router around an already opened database and mailer.
// Split out of NewRouter so tests can inject both.
func New(d *gorm.DB, m service.Mailer) *API {
	a := &API{
		DB:    d,
		Argon: security.New(),
		Mail:  m,
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{viper.GetString("host.frontend_url")},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(d)
	body := middleware.BodySizeLimiter(1 << 20)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a session token
		main.HEAD("/validate", jwt, a.Validate)
	}

	auth := main.Group("/auth", body)
	{
		// POST /api/auth/register	-> Registers a new account
		auth.POST("/register", a.AuthRegister)

		// POST /api/auth/login		-> Logs in a user and returns a session token
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/forgot-password -> Mails a one-time reset link
		auth.POST("/forgot-password", a.AuthForgotPassword)

		// PUT /api/auth/reset-password/:resetToken -> Consumes a reset link
		auth.PUT("/reset-password/:resetToken", a.AuthResetPassword)

		// GET /api/auth/me		-> Returns the requester's profile
		auth.GET("/me", jwt, a.AuthMe)
	}

	apps := main.Group("/applications", jwt, body)
	{
		// GET /api/applications	-> Lists the requester's applications with counts
		apps.GET("", a.ApplicationFetchBulk)

		// GET /api/applications/recent	-> The 5 most recent applications
		apps.GET("/recent", a.ApplicationRecent)

		// GET /api/applications/formatted -> UI-ready projection
		apps.GET("/formatted", cacheForUser(30), a.ApplicationFormatted)

		// POST /api/applications	-> Creates a new application
		apps.POST("", a.ApplicationCreate)

		// PUT /api/applications/:id	-> Patches an owned application
		apps.PUT("/:id", a.ApplicationUpdate)

		// DELETE /api/applications/:id	-> Deletes an owned application and its interviews
		apps.DELETE("/:id", a.ApplicationDelete)

		// GET /api/applications/:id/details -> Application with interviews expanded
		apps.GET("/:id/details", a.ApplicationFetch)
	}

	interviews := main.Group("/interviews", jwt, body)
	{
		// GET /api/interviews		-> Lists the requester's interviews with counts
		interviews.GET("", a.InterviewFetchBulk)

		// GET /api/interviews/upcoming	-> Next 5 scheduled interviews
		interviews.GET("/upcoming", a.InterviewUpcoming)

		// GET /api/interviews/by-status -> Upcoming/past toggle
		interviews.GET("/by-status", a.InterviewByStatus)

		// GET /api/interviews/:id	-> Interview detail with its application
		interviews.GET("/:id", a.InterviewFetch)

		// POST /api/interviews		-> Schedules an interview against an owned application
		interviews.POST("", a.InterviewCreate)

		// PUT /api/interviews/:id	-> Patches an owned interview
		interviews.PUT("/:id", a.InterviewUpdate)

		// PATCH /api/interviews/:id/status -> Status transition
		interviews.PATCH("/:id/status", a.InterviewStatus)

		// DELETE /api/interviews/:id	-> Deletes an owned interview
		interviews.DELETE("/:id", a.InterviewDelete)
	}

	profile := main.Group("/profile", jwt)
	{
		// GET /api/profile/me		-> Profile page data
		profile.GET("/me", a.ProfileFetch)

		// GET /api/profile/applications -> Full application history
		profile.GET("/applications", a.ProfileApplications)
	}

	dashboard := main.Group("/dashboard", jwt)
	{
		// GET /api/dashboard/stats	-> Aggregated dashboard counters
		dashboard.GET("/stats", cacheForUser(30), a.DashboardStats)

		// GET /api/dashboard/activity	-> Recent applications + upcoming interviews
		dashboard.GET("/activity", a.DashboardActivity)

		// GET /api/dashboard/timeline	-> Merged chronological activity feed
		dashboard.GET("/timeline", a.DashboardTimeline)
	}

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

// cacheForUser caches a GET response for sec seconds, keyed per user so
// one account never sees another's cached payload.
func cacheForUser(sec int) gin.HandlerFunc {
	ttl := time.Second * time.Duration(sec)

	return cache.CacheByRequestURI(store, ttl, cache.WithCacheStrategyByRequest(func(c *gin.Context) (bool, cache.Strategy) {
		return true, cache.Strategy{
			CacheKey:      UserCacheKey(c.GetString("userID"), c.Request.RequestURI),
			CacheDuration: ttl,
		}
	}))
}

// UserCacheKey builds the per-user cache key for a request URI
func UserCacheKey(userID, uri string) string {
	return userID + "|" + uri
}
