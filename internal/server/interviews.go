package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/internal/loader"
	"github.com/withoutsultang/Interview-agent-aivle/models"
	"github.com/withoutsultang/Interview-agent-aivle/session"
)

// InterviewsHandler exposes sessions over HTTP. One request per turn: the
// session suspends in the store between requests while the candidate types.
type InterviewsHandler struct {
	Runner *interview.Runner
	Store  session.Store
	Logger *log.Logger
}

// Register mounts the interview routes on the given group.
func (h *InterviewsHandler) Register(g *echo.Group) {
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.POST("/:id/answers", h.answer)
	g.GET("/:id/report", h.report)
	g.DELETE("/:id", h.abandon)
}

type createRequest struct {
	Text string `json:"text"`
}

type turnResponse struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Turns    int    `json:"turns"`
	Done     bool   `json:"done"`
}

func turnView(st *interview.State) turnResponse {
	return turnResponse{
		ID:       st.ID,
		Topic:    st.CurrentTopic,
		Question: st.CurrentQuestion,
		Turns:    st.Turns(),
		Done:     st.Done(),
	}
}

// create starts a session from either an uploaded document (multipart field
// "document") or a raw text body.
func (h *InterviewsHandler) create(c echo.Context) error {
	text, err := h.sourceText(c)
	if err != nil {
		return err
	}

	st := h.Runner.Begin(c.Request().Context(), text)
	if err := h.Store.Create(c.Request().Context(), st); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to persist session")
	}
	h.Logger.Printf("session %s started", st.ID)
	return c.JSON(http.StatusCreated, turnView(st))
}

func (h *InterviewsHandler) sourceText(c echo.Context) (string, error) {
	if file, err := c.FormFile("document"); err == nil {
		src, err := file.Open()
		if err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		defer src.Close()

		// Preserve the extension so the loader can pick the right parser.
		tmp, err := os.CreateTemp("", "candidate-*"+filepath.Ext(file.Filename))
		if err != nil {
			return "", echo.NewHTTPError(http.StatusInternalServerError, "failed to stage upload")
		}
		defer os.Remove(tmp.Name())
		if _, err := io.Copy(tmp, src); err != nil {
			tmp.Close()
			return "", echo.NewHTTPError(http.StatusInternalServerError, "failed to stage upload")
		}
		tmp.Close()

		text, err := loader.Extract(tmp.Name())
		if err != nil {
			if errors.Is(err, models.ErrUnsupportedFormat) {
				return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return text, nil
	}

	var req createRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "expected a document upload or a json body")
	}
	return req.Text, nil
}

func (h *InterviewsHandler) get(c echo.Context) error {
	st, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, turnView(st))
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// answer runs one evaluate-route-apply cycle for the session.
func (h *InterviewsHandler) answer(c echo.Context) error {
	st, err := h.load(c)
	if err != nil {
		return err
	}
	if st.Done() {
		return echo.NewHTTPError(http.StatusConflict, "interview already finished")
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid answer body")
	}

	h.Runner.Submit(c.Request().Context(), st, req.Answer)
	if err := h.Store.Save(c.Request().Context(), st); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to persist session")
	}
	return c.JSON(http.StatusOK, turnView(st))
}

func (h *InterviewsHandler) report(c echo.Context) error {
	st, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interview.BuildReport(st))
}

// abandon discards a session between turns. No cleanup beyond dropping the
// snapshot is needed.
func (h *InterviewsHandler) abandon(c echo.Context) error {
	if err := h.Store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete session")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InterviewsHandler) load(c echo.Context) (*interview.State, error) {
	st, err := h.Store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load session")
	}
	return st, nil
}
