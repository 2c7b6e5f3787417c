package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/search"
)

// HandlerOptions configures the live site handler.
type HandlerOptions struct {
	// StaticDir holds user assets served under /assets/.
	StaticDir string
	// AllowAllOrigins lets websocket clients connect from any origin.
	AllowAllOrigins bool
}

// Handler serves the site live from the store.
type Handler struct {
	store    *catalog.Store
	renderer *Renderer
	opts     HandlerOptions
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates the live site handler.
func NewHandler(store *catalog.Store, renderer *Renderer, opts HandlerOptions, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		store:    store,
		renderer: renderer,
		opts:     opts,
		logger:   logger.Named("site"),
	}
	if opts.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// Register mounts the site routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/", h.handleHome)
		r.Get("/tournaments", h.handleTournaments)
		r.Get("/showcase", h.pageHandler(PageShowcase))
		r.Get("/cubes", h.pageHandler(PageCubes))
		r.Get("/gallery/{index}", h.handleGallery)
		r.Get("/lightbox/{view}/{set}/{pos}", h.handleLightbox)
		r.Get("/search", h.handleSearch)
		r.Get("/api/search", h.handleAPISearch)

		r.Get("/assets/style.css", h.handleAsset("text/css; charset=utf-8", cssContent))
		r.Get("/assets/script.js", h.handleAsset("application/javascript; charset=utf-8", jsContent))
		if h.opts.StaticDir != "" {
			if info, err := os.Stat(h.opts.StaticDir); err == nil && info.IsDir() {
				r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.opts.StaticDir))))
			}
		}
	})

	r.Get("/ws/search", h.handleWebSocket)
}

// handleHome renders the landing page. A ?page= id from old links is
// forwarded to its route, and an unknown id lands on home.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("page"); id != "" {
		if page := ResolvePage(id); page != PageHome {
			http.Redirect(w, r, PagePath(page, TabUpcoming), http.StatusFound)
			return
		}
	}
	h.writePage(w, r, PageHome, TabUpcoming)
}

func (h *Handler) handleTournaments(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, PageTournaments, ResolveTab(r.URL.Query().Get("tab")))
}

func (h *Handler) pageHandler(page PageID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writePage(w, r, page, TabUpcoming)
	}
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, page PageID, tab Tab) {
	body, err := h.renderer.Page(h.store.Snapshot(), LiveLinks, page, tab)
	h.writeHTML(w, r, body, err)
}

func (h *Handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	body, err := h.renderer.Gallery(h.store.Snapshot(), LiveLinks, index)
	h.writeHTML(w, r, body, err)
}

func (h *Handler) handleLightbox(w http.ResponseWriter, r *http.Request) {
	view := ViewKey(chi.URLParam(r, "view"))
	set, err1 := strconv.Atoi(chi.URLParam(r, "set"))
	pos, err2 := strconv.Atoi(chi.URLParam(r, "pos"))
	if err1 != nil || err2 != nil {
		http.NotFound(w, r)
		return
	}
	snap := h.store.Snapshot()

	if key := r.URL.Query().Get("key"); key != "" {
		next, err := h.renderer.KeyRedirect(snap, LiveLinks, view, set, pos, key)
		if err != nil {
			h.writeHTML(w, r, nil, err)
			return
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}

	body, err := h.renderer.Lightbox(snap, LiveLinks, view, set, pos)
	h.writeHTML(w, r, body, err)
}

// handleSearch renders the results page. With first=1 it goes straight to
// the page of the first result, like pressing Enter in the search box.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	snap := h.store.Snapshot()

	if r.URL.Query().Get("first") == "1" {
		if first, ok := search.Search(snap, q).First(); ok {
			http.Redirect(w, r, PagePath(ResolvePage(first.Page), TabUpcoming), http.StatusSeeOther)
			return
		}
	}

	body, _, err := h.renderer.Search(snap, LiveLinks, q)
	h.writeHTML(w, r, body, err)
}

func (h *Handler) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	res := search.Search(h.store.Snapshot(), r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Warn("encoding search response", zap.Error(err))
	}
}

func (h *Handler) handleAsset(contentType, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write([]byte(content))
	}
}

func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, body []byte, err error) {
	if errors.Is(err, ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("render failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Q string `json:"q"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Session string `json:"session"`
	search.Results
}

// handleWebSocket answers each typed query with fresh results. Every
// connection gets its own session id for the logs.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := h.logger.With(zap.String("session", session))
	logger.Debug("search session opened")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", zap.Error(err))
			}
			logger.Debug("search session closed")
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			logger.Debug("invalid search message", zap.Error(err))
			continue
		}

		res := search.Search(h.store.Snapshot(), req.Q)
		if err := conn.WriteJSON(wsResponse{Session: session, Results: res}); err != nil {
			logger.Warn("websocket write", zap.Error(err))
			return
		}
	}
}
