package handler

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PageHandler renders the three server-side views. The templates carry no
// business logic; the dine and kitchen pages talk to the API from the client.
type PageHandler struct {
	tmpl *template.Template
}

// NewPageHandler parses all page templates from the given filesystem
// (templates/*.html).
func NewPageHandler(fsys fs.FS) (*PageHandler, error) {
	tmpl, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{tmpl: tmpl}, nil
}

// RegisterRoutes registers page endpoints on the given Chi router.
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Landing)
	r.Get("/dine", h.Dine)
	r.Get("/kitchen", h.Kitchen)
}

// Landing handles GET /.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, "main.html")
}

// Dine handles GET /dine, the dine-in cart builder.
func (h *PageHandler) Dine(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dine.html")
}

// Kitchen handles GET /kitchen, the kitchen display.
func (h *PageHandler) Kitchen(w http.ResponseWriter, r *http.Request) {
	h.render(w, "kitchen.html")
}

func (h *PageHandler) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		log.Printf("ERROR: render %s: %v", name, err)
	}
}
