package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages(t *testing.T) {
	p := NewPages()

	_, ok := p.Get("/admin/inventario")
	assert.False(t, ok, "nothing cached yet")

	gen := p.Generation("/admin/inventario")
	p.Put("/admin/inventario", "payload-1", gen)
	got, ok := p.Get("/admin/inventario")
	assert.True(t, ok)
	assert.Equal(t, "payload-1", got)

	p.Invalidate("/admin/inventario")
	_, ok = p.Get("/admin/inventario")
	assert.False(t, ok, "stale payload must not be served")

	gen = p.Generation("/admin/inventario")
	p.Put("/admin/inventario", "payload-2", gen)
	got, ok = p.Get("/admin/inventario")
	assert.True(t, ok)
	assert.Equal(t, "payload-2", got)
}

func TestPagesPutAfterInvalidateDropped(t *testing.T) {
	p := NewPages()

	// A render captures the generation and starts fetching...
	gen := p.Generation("/admin/inventario")

	// ...a mutation lands while the fetch is in flight...
	p.Invalidate("/admin/inventario")

	// ...so the render's payload must not be written back.
	p.Put("/admin/inventario", "pre-mutation payload", gen)
	_, ok := p.Get("/admin/inventario")
	assert.False(t, ok, "payload fetched before the mutation must not revive")

	// The next render sees the new generation and caches normally.
	gen = p.Generation("/admin/inventario")
	p.Put("/admin/inventario", "fresh payload", gen)
	got, ok := p.Get("/admin/inventario")
	assert.True(t, ok)
	assert.Equal(t, "fresh payload", got)
}

func TestPagesInvalidateUnknownPath(t *testing.T) {
	p := NewPages()
	p.Invalidate("/admin/pedidos")

	_, ok := p.Get("/admin/pedidos")
	assert.False(t, ok)
}

func TestPagesPathsAreIndependent(t *testing.T) {
	p := NewPages()
	p.Put("/admin/inventario", "products", p.Generation("/admin/inventario"))
	p.Put("/admin/pedidos", "orders", p.Generation("/admin/pedidos"))

	p.Invalidate("/admin/inventario")

	_, ok := p.Get("/admin/inventario")
	assert.False(t, ok)

	got, ok := p.Get("/admin/pedidos")
	assert.True(t, ok)
	assert.Equal(t, "orders", got)
}
