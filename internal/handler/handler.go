// Package handler exposes the identity-verification session API over
// HTTP. It is a thin transport layer: all lifecycle logic lives in
// core/idsession.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/idbridge/core/idsession"
	"github.com/dmitrymomot/idbridge/pkg/qrcode"
)

// qrImageSize is the rendered QR edge length in pixels.
const qrImageSize = 360

// Handler serves the /api/idv routes.
type Handler struct {
	sessions *idsession.Manager
	log      *slog.Logger
}

// New creates the HTTP handler around a session manager.
func New(sessions *idsession.Manager, log *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		log:      log,
	}
}

// RegisterRoutes mounts the verification API on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/idv")
	api.POST("/session", h.createSession)
	api.GET("/session/:id", h.resumeSession)
	api.GET("/session/:id/status", h.getStatus)
	api.POST("/session/:id/result", h.reportResult)
	api.GET("/session/:id/qr", h.getQRCode)
}

func (h *Handler) createSession(c *gin.Context) {
	resp, err := h.sessions.Create(originURL(c.Request))
	if err != nil {
		h.log.Error("failed to create session", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	h.log.Info("session created", slog.String("session_id", resp.SessionID))
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) resumeSession(c *gin.Context) {
	resp, err := h.sessions.Resume(c.Param("id"))
	if err != nil {
		h.notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getStatus(c *gin.Context) {
	snap, err := h.sessions.GetStatus(c.Param("id"))
	if err != nil {
		h.notFound(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// resultRequest is the wallet's callback body. HasValidID is a pointer so
// the binding layer can tell an absent flag from an explicit false.
type resultRequest struct {
	HasValidID     *bool          `json:"hasValidId" binding:"required"`
	WalletResponse map[string]any `json:"walletResponse"`
}

func (h *Handler) reportResult(c *gin.Context) {
	var req resultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hasValidId is required"})
		return
	}

	var payload string
	if req.WalletResponse != nil {
		raw, err := json.Marshal(req.WalletResponse)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid walletResponse"})
			return
		}
		payload = string(raw)
	}

	status, err := h.sessions.ReportResult(c.Param("id"), *req.HasValidID, payload)
	if err != nil {
		h.notFound(c, err)
		return
	}

	h.log.Info("session result reported",
		slog.String("session_id", c.Param("id")),
		slog.String("status", string(status)),
	)
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *Handler) getQRCode(c *gin.Context) {
	snap, err := h.sessions.GetStatus(c.Param("id"))
	if err != nil {
		h.notFound(c, err)
		return
	}

	png, err := qrcode.Generate(snap.QRContent, qrImageSize)
	if err != nil {
		h.log.Error("failed to render qr code",
			slog.String("session_id", snap.SessionID),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render qr code"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="session-`+snap.SessionID+`.png"`)
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) notFound(c *gin.Context, err error) {
	if errors.Is(err, idsession.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session id"})
		return
	}
	h.log.Error("session lookup failed", slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// originURL rebuilds the absolute base URL of the incoming request, with
// a trailing slash and no query. The session id is appended to it as the
// QR deep link.
func originURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
