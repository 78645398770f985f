package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/internal/telemetry"
	"github.com/withoutsultang/Interview-agent-aivle/oracle"
	"github.com/withoutsultang/Interview-agent-aivle/session"
)

// Run hosts the interview API. Sessions are fully isolated from each other;
// each HTTP request drives exactly one turn of one session.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

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
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	orc, err := oracle.New(cfg.LLM)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled {
		orc = telemetry.Oracle(orc)
	}

	store, err := session.NewStore(context.Background(), cfg.Storage, cfg.Interview.SessionTTL)
	if err != nil {
		return err
	}

	h := &InterviewsHandler{
		Runner: interview.NewRunner(cfg.Interview, orc),
		Store:  store,
		Logger: log.New(log.Writer(), "[INTERVIEWS] ", log.LstdFlags),
	}
	h.Register(e.Group("/api/interviews"))

	return e.Start(cfg.Server.Address)
}
