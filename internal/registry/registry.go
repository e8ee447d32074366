// Package registry provides a global registry of cosmetic drone variants.
// Variants register themselves in init() functions, allowing the renderer and
// the shop to resolve an equipped id without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-drone/internal/core"
)

// DrawFunc renders a drone occupying r on dst, with a shield outline when
// shield is true. It must only write to dst.
type DrawFunc func(dst *core.Screen, r core.Rect, shield bool)

// Variant is a purchasable cosmetic drone look.
type Variant struct {
	ID    string
	Title string
	Price int // Data-bits; 0 for free variants
	Draw  DrawFunc
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Draw == nil {
		panic(fmt.Sprintf("registry: variant %q has no draw routine", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, cheapest first, then by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Price != result[j].Price {
			return result[i].Price < result[j].Price
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	return v, ok
}

// Get returns the variant with the given ID, or an error if it is unknown.
func Get(id string) (Variant, error) {
	v, ok := Lookup(id)
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Resolve returns the variant for id, falling back to fallbackID and then to
// a plain block so rendering never fails on a stale equipped id.
func Resolve(id, fallbackID string) Variant {
	if v, ok := Lookup(id); ok {
		return v
	}
	if v, ok := Lookup(fallbackID); ok {
		return v
	}
	return Variant{ID: id, Title: id, Draw: drawPlain}
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

func drawPlain(dst *core.Screen, r core.Rect, shield bool) {
	if shield {
		dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorCyan)
	}
	dst.DrawRect(r, '█', core.ColorDefault)
}
