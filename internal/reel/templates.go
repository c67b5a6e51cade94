package reel

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
)

// Built-in template ids understood by the rendering provider.
const (
	QuoteTemplateID        = "quote-reel"
	SlideshowTemplateID    = "slideshow-reel"
	TextOverlayTemplateID  = "text-overlay-reel"
	AnimatedTextTemplateID = "animated-text-reel"
)

func builtinTemplates() []domain.ReelTemplate {
	return []domain.ReelTemplate{
		{
			ID:          QuoteTemplateID,
			Name:        "Zitat",
			Description: "Ein prägnantes Zitat auf Markenhintergrund",
			Type:        domain.TemplateQuote,
			SuitableFor: []string{"quotes", "motivation", "tips"},
		},
		{
			ID:          SlideshowTemplateID,
			Name:        "Slideshow",
			Description: "Bilderstrecke mit Titel und Hashtags",
			Type:        domain.TemplateSlideshow,
			SuitableFor: []string{"galleries", "campus", "events"},
		},
		{
			ID:          TextOverlayTemplateID,
			Name:        "Text Overlay",
			Description: "Zusammenfassung als Text über dem Titelbild",
			Type:        domain.TemplateTextOverlay,
			SuitableFor: []string{"long reads", "guides"},
		},
		{
			ID:          AnimatedTextTemplateID,
			Name:        "Animated Text",
			Description: "Animierter Titel mit kurzer Zusammenfassung",
			Type:        domain.TemplateAnimatedText,
			SuitableFor: []string{"news", "short posts"},
		},
	}
}

// TemplateRegistry holds the built-in templates plus templates registered at
// runtime. It is safe for concurrent use.
type TemplateRegistry struct {
	mu        sync.RWMutex
	templates []domain.ReelTemplate
	byID      map[string]int
	builtins  map[domain.TemplateType]string
}

// NewTemplateRegistry returns a registry seeded with the built-ins.
func NewTemplateRegistry() *TemplateRegistry {
	r := &TemplateRegistry{
		byID:     make(map[string]int),
		builtins: make(map[domain.TemplateType]string),
	}
	for _, tmpl := range builtinTemplates() {
		r.byID[tmpl.ID] = len(r.templates)
		r.templates = append(r.templates, tmpl)
		r.builtins[tmpl.Type] = tmpl.ID
	}
	return r
}

// Register adds a custom template. Custom templates are only used when a
// caller pins them by id.
func (r *TemplateRegistry) Register(tmpl domain.ReelTemplate) error {
	tmpl.ID = strings.TrimSpace(tmpl.ID)
	if tmpl.ID == "" {
		return fmt.Errorf("register template: empty id")
	}
	if tmpl.Type == "" {
		tmpl.Type = domain.TemplateCustom
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[tmpl.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTemplate, tmpl.ID)
	}
	r.byID[tmpl.ID] = len(r.templates)
	r.templates = append(r.templates, tmpl)
	return nil
}

// Get returns the template registered under id.
func (r *TemplateRegistry) Get(id string) (domain.ReelTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return domain.ReelTemplate{}, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, id)
	}
	return r.templates[i], nil
}

// List returns the built-ins followed by custom templates in registration order.
func (r *TemplateRegistry) List() []domain.ReelTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ReelTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}

func (r *TemplateRegistry) builtin(kind domain.TemplateType) domain.ReelTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.templates[r.byID[r.builtins[kind]]]
}
