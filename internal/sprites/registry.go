package sprites

import (
	"sync"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Registry hands out texture handles and resolves them back. T is whatever
// the renderer draws with.
type Registry[T any] struct {
	mu       sync.RWMutex
	next     mines.TextureID
	textures map[mines.TextureID]T
	names    map[string]mines.TextureID
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		next:     1, // 0 stays the "no texture" handle
		textures: make(map[mines.TextureID]T),
		names:    make(map[string]mines.TextureID),
	}
}

// Register stores tex under name and returns its handle. Registering a
// name twice replaces the texture but keeps the handle.
func (r *Registry[T]) Register(name string, tex T) mines.TextureID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.names[name]; ok {
		r.textures[id] = tex
		return id
	}
	id := r.next
	r.next++
	r.textures[id] = tex
	r.names[name] = id
	return id
}

func (r *Registry[T]) Lookup(id mines.TextureID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tex, ok := r.textures[id]
	return tex, ok
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.textures)
}
