package engine

import (
	"log/slog"
	"sync"
)

// Workflow modes. ModeOffers is the canonical competitive-bidding workflow;
// ModeDirect is the restricted fixed-price variant where a verified provider
// accepts a pending job directly at the catalog price.
const (
	ModeOffers = "offers"
	ModeDirect = "direct"
)

// CatalogItem is one entry of the fixed cleaning-service price list. In
// direct mode it fixes a job's price at creation; in offers mode it is
// informational only.
type CatalogItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Config holds engine construction parameters.
type Config struct {
	Mode    string
	Catalog []CatalogItem
	Logger  *slog.Logger
}

// Engine is the marketplace core: the Users, Jobs and Offers collections plus
// the operations that transition them. All state is in-memory.
//
// Every exported operation runs as a single atomic unit under mu and follows
// validate-then-commit ordering: no operation partially applies its effect
// before failing. Session identity is an explicit token argument on each
// operation, never ambient state.
type Engine struct {
	mu       sync.Mutex
	store    *store
	sessions map[string]int64 // session token -> user id
	mode     string
	catalog  []CatalogItem
	logger   *slog.Logger
}

// New creates an engine with empty collections.
func New(cfg Config) *Engine {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeOffers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		store:    newStore(),
		sessions: make(map[string]int64),
		mode:     mode,
		catalog:  cfg.Catalog,
		logger:   logger,
	}
}

// Mode returns the configured workflow mode.
func (e *Engine) Mode() string {
	return e.mode
}

// Catalog returns the fixed service price list.
func (e *Engine) Catalog() []CatalogItem {
	out := make([]CatalogItem, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// catalogPrice looks up a service type in the price list.
func (e *Engine) catalogPrice(serviceType string) (float64, bool) {
	for _, item := range e.catalog {
		if item.Name == serviceType {
			return item.Price, true
		}
	}
	return 0, false
}
