// Package registry maps scene identifiers to scene factories.
// Scenes register themselves in init() functions, so the session can
// instantiate them without importing every scene package.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// ErrUnknownScene is returned by Create when no factory is registered.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Factory creates a fresh scene instance.
type Factory func() scene.Scene

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    scene.ID
	Title string
}

// Registry holds scene factories. The zero value is not usable; use New.
type Registry struct {
	mu        sync.RWMutex
	factories map[scene.ID]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[scene.ID]Factory)}
}

// Register adds a factory. Panics on an invalid or duplicate id.
func (r *Registry) Register(id scene.ID, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !id.Valid() {
		panic(fmt.Sprintf("registry: invalid scene id %d", int(id)))
	}
	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}
	r.factories[id] = f
}

// Create instantiates the scene registered for id.
func (r *Registry) Create(id scene.ID) (scene.Scene, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScene, id)
	}
	return f(), nil
}

// Exists checks if a scene with the given id is registered.
func (r *Registry) Exists(id scene.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// List returns the registered scenes in play order.
func (r *Registry) List() []SceneInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SceneInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, SceneInfo{ID: id, Title: id.Title()})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Default is the registry scene packages register into.
var Default = New()

// Register adds a factory to the default registry.
// Typically called from a scene's init() function.
func Register(id scene.ID, f Factory) {
	Default.Register(id, f)
}

// Create instantiates a scene from the default registry.
func Create(id scene.ID) (scene.Scene, error) {
	return Default.Create(id)
}

// Exists checks the default registry.
func Exists(id scene.ID) bool {
	return Default.Exists(id)
}

// List returns the scenes in the default registry.
func List() []SceneInfo {
	return Default.List()
}
