package handler

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"eso-store-web/internal/middleware"
	"eso-store-web/internal/session"
)

// TemplateCache holds parsed page templates. Every page is parsed together
// with layout.html so all pages share the same frame.
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

// NewTemplateCache creates an empty template cache with the shared function
// map.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: template.FuncMap{
			"formatPrice": formatPrice,
			"formatDate":  formatDate,
			"rarityClass": rarityClass,
			"prevPage":    func(page int) int { return page - 1 },
			"nextPage":    func(page int) int { return page + 1 },
		},
	}
}

// Load parses all page templates in dir. layout.html is the shared frame and
// is not a page of its own.
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}

	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(tc.funcs).ParseFiles(layout, page)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tc.cache[name] = tmpl
	}
	return nil
}

// Get returns a parsed page template by file name.
func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// Renderer renders pages with the shared frame data: current session, flash
// messages and the active nav section.
type Renderer struct {
	templates *TemplateCache
	flash     *Flash
	sessions  *session.Manager
}

// NewRenderer creates a renderer.
func NewRenderer(templates *TemplateCache, flash *Flash, sessions *session.Manager) *Renderer {
	return &Renderer{templates: templates, flash: flash, sessions: sessions}
}

// Render executes the named page template. data carries the page-specific
// view model; session, flashes and nav state are injected here.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, data map[string]interface{}) {
	tmpl := r.templates.Get(name)
	if tmpl == nil {
		log.Printf("[Renderer] Template not found: %s", name)
		http.Error(w, "page not available", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	data["Session"] = middleware.SessionFromContext(req.Context())
	data["Flashes"] = r.flash.Pop(w, req)
	data["Nav"] = NavItems
	data["ActiveNav"] = ActiveTitle(req.URL.Path)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("[Renderer] Failed to render %s: %v", name, err)
	}
}

// formatPrice renders a V-Bucks amount the way the store displays it.
func formatPrice(price int) string {
	if price <= 0 {
		return "Not informed"
	}
	return fmt.Sprintf("%d V-Bucks", price)
}

// formatDate renders timestamps for display; zero times render as a dash.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

// rarityClass maps a cosmetic rarity to its badge CSS class.
func rarityClass(rarity string) string {
	switch rarity {
	case "common", "uncommon", "rare", "epic", "legendary":
		return "rarity-" + rarity
	default:
		return "rarity-common"
	}
}
