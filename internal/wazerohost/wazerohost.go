// Package wazerohost adapts a live WASM linear memory, obtained from a module
// instantiated with wazero, into a host.Host. It lets this allocator run as the
// host-side heap manager for a WASM guest's linear memory, the same role a guest's
// own dlmalloc/emmalloc would normally play from inside the sandbox.
package wazerohost

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/arenabyte/segalloc/internal/host"
)

// pageSize is the fixed WASM linear-memory page size (64 KiB).
const pageSize = 1 << 16

// Host is a host.Host backed by a wazero api.Memory. The heap it manages occupies
// [base, base+used) of mem; bytes below base are left untouched, which lets a guest
// module keep its own data/stack/globals at the low end of the same linear memory.
type Host struct {
	mem  api.Memory
	base uint32
	used uint32
}

// New wraps mem, reserving the region starting at base for this heap. Pass base == 0
// when mem has no other occupant.
func New(mem api.Memory, base uint32) *Host {
	return &Host{mem: mem, base: base}
}

// Extend implements host.Host, growing the underlying WASM memory in whole pages
// only when the requested range isn't already backed by previously grown pages.
func (h *Host) Extend(n uint32) (uint32, error) {
	prev := h.base + h.used
	needed := prev + n

	if cur := h.mem.Size(); needed > cur {
		deltaPages := (needed - cur + pageSize - 1) / pageSize
		if _, ok := h.mem.Grow(deltaPages); !ok {
			return 0, fmt.Errorf("wazerohost: memory.grow(%d pages) refused: %w", deltaPages, host.ErrOutOfMemory)
		}
	}

	h.used += n
	return prev, nil
}

// Bounds implements host.Host.
func (h *Host) Bounds() (uint32, uint32) {
	return h.base, h.base + h.used
}

// ReadUint32 implements host.Host.
func (h *Host) ReadUint32(addr uint32) uint32 {
	v, ok := h.mem.ReadUint32Le(addr)
	if !ok {
		panic(fmt.Sprintf("wazerohost: read out of bounds at 0x%x", addr))
	}
	return v
}

// WriteUint32 implements host.Host.
func (h *Host) WriteUint32(addr uint32, v uint32) {
	if !h.mem.WriteUint32Le(addr, v) {
		panic(fmt.Sprintf("wazerohost: write out of bounds at 0x%x", addr))
	}
}

// ReadBytes implements host.Host.
func (h *Host) ReadBytes(addr uint32, n uint32) []byte {
	data, ok := h.mem.Read(addr, n)
	if !ok {
		panic(fmt.Sprintf("wazerohost: read out of bounds at 0x%x len %d", addr, n))
	}
	out := make([]byte, n)
	copy(out, data)
	return out
}

// WriteBytes implements host.Host.
func (h *Host) WriteBytes(addr uint32, data []byte) {
	if !h.mem.Write(addr, data) {
		panic(fmt.Sprintf("wazerohost: write out of bounds at 0x%x len %d", addr, len(data)))
	}
}

var _ host.Host = (*Host)(nil)
