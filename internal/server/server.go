package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appconfig "github.com/shreya-bani/AI-Intake-Assist/config"
	"github.com/shreya-bani/AI-Intake-Assist/conversation"
	"github.com/shreya-bani/AI-Intake-Assist/extraction"
	"github.com/shreya-bani/AI-Intake-Assist/provider"
	"github.com/shreya-bani/AI-Intake-Assist/session"
)

func Run(cfg *appconfig.Config, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize shared dependencies (top-level DI)
	store := session.NewStore(session.InMemoryStore)
	llm, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return err
	}
	conv := conversation.NewService(store, llm)
	extract := extraction.NewService(store, llm)

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"provider": cfg.LLM.Provider,
			"model":    cfg.LLM.Model,
		})
	})

	sh := &SessionsHandler{Store: store, Conversation: conv, Extraction: extract}
	sh.Register(api.Group("/sessions"))

	// Session expiry is enforced here, outside the core, per the declared
	// config policy.
	janitor := NewJanitor(store, cfg.Session.CleanupCron, cfg.Session.Timeout)
	janitor.Start()
	defer janitor.Shutdown()

	if addr == "" {
		addr = cfg.Server.Address
	}
	return e.Start(addr)
}
