// Package webui serves the embedded chat page and a browseable view of
// the knowledge base for answer curators.
package webui

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pillaihoc/phoccy/internal/kb"
)

//go:embed index.html
var indexHTML []byte

// UI serves the chat front-end and KB topic pages.
type UI struct {
	kb *kb.KnowledgeBase
}

// New creates a UI over the loaded knowledge base.
func New(k *kb.KnowledgeBase) *UI {
	return &UI{kb: k}
}

// RegisterRoutes mounts the UI routes onto the given router.
func (u *UI) RegisterRoutes(r chi.Router) {
	r.Get("/", u.ServeIndex)
	r.Get("/topics", u.handleTopicList)
	r.Get("/topics/{name}", u.handleTopicPage)
}

// ServeIndex serves the embedded HTML chat page.
func (u *UI) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
