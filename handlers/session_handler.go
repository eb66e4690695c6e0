package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"evaluapp/services"
)

const sessionCookie = "evaluapp_session"

// SessionHandler serves the exam-taking flow. Answer state lives in the
// session store keyed by a random cookie, so re-rendering the page never
// loses prior selections.
type SessionHandler struct {
	sessions *services.SessionService
	store    services.Store
}

func NewSessionHandler(sessions *services.SessionService, store services.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions, store: store}
}

// SelectExam renders the exam picker. A read failure degrades to an empty
// list plus the message; an empty list is a display state, not an error.
func (h *SessionHandler) SelectExam(c *gin.Context) {
	exams, faults, err := h.sessions.ListExams()
	data := gin.H{"Exams": exams, "Faults": faults}
	if err != nil {
		data["Error"] = err.Error()
	}
	c.HTML(http.StatusOK, "select.html", data)
}

// StartSession loads the chosen exam into a fresh session and redirects to
// the answering page.
func (h *SessionHandler) StartSession(c *gin.Context) {
	examID, err := strconv.Atoi(c.PostForm("examen_id"))
	if err != nil {
		h.renderSelect(c, "choose an exam first")
		return
	}

	state, err := h.sessions.Start(examID)
	if err != nil {
		h.renderSelect(c, err.Error())
		return
	}

	id := h.sessionID(c)
	if err := h.store.Save(c.Request.Context(), id, state); err != nil {
		c.String(http.StatusInternalServerError, "could not save session: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/realizar/sesion")
}

// SessionPage renders the current session in whatever state it is in.
func (h *SessionHandler) SessionPage(c *gin.Context) {
	state, _, ok := h.loadState(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "session.html", gin.H{"State": state})
}

// UpdateSession records the posted selections and then either just saves
// (action=guardar) or submits the whole answer set. Submitting is always an
// explicit user action.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	state, id, ok := h.loadState(c)
	if !ok {
		return
	}

	// a retry after a failed submit goes back to answering first
	h.sessions.Resume(state)

	for _, sq := range state.Questions {
		if !sq.Answerable {
			continue
		}
		value := c.PostForm(fmt.Sprintf("q%d", sq.Question.ID))
		if value == "" {
			continue
		}
		optionID, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		// ignore individual bad selections; the radio inputs constrain them
		_ = h.sessions.Answer(state, sq.Question.ID, optionID)
	}

	if c.PostForm("action") == "guardar" {
		if err := h.store.Save(c.Request.Context(), id, state); err != nil {
			c.String(http.StatusInternalServerError, "could not save session: %v", err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/realizar/sesion")
		return
	}

	_, err := h.sessions.Submit(state)
	// Persist the state transition either way: completed, failed, or still
	// answering after a local rejection.
	if saveErr := h.store.Save(c.Request.Context(), id, state); saveErr != nil {
		c.String(http.StatusInternalServerError, "could not save session: %v", saveErr)
		return
	}
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.HTML(http.StatusOK, "session.html", gin.H{"State": state, "Error": verr.Message})
			return
		}
		// server failure: the state carries it as LastError and keeps the
		// cached options for the retry
		c.Redirect(http.StatusSeeOther, "/realizar/sesion")
		return
	}

	c.Redirect(http.StatusSeeOther, "/realizar/sesion")
}

func (h *SessionHandler) renderSelect(c *gin.Context, errMsg string) {
	exams, faults, _ := h.sessions.ListExams()
	c.HTML(http.StatusOK, "select.html", gin.H{"Exams": exams, "Faults": faults, "Error": errMsg})
}

func (h *SessionHandler) loadState(c *gin.Context) (*services.SessionState, string, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		c.Redirect(http.StatusSeeOther, "/realizar")
		return nil, "", false
	}
	state, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.Redirect(http.StatusSeeOther, "/realizar")
			return nil, "", false
		}
		c.String(http.StatusInternalServerError, "could not load session: %v", err)
		return nil, "", false
	}
	return state, id, true
}

// sessionID returns the browser's session id, minting one when absent.
func (h *SessionHandler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := newSessionID()
	c.SetCookie(sessionCookie, id, int((2 * time.Hour).Seconds()), "/", "", false, true)
	return id
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
