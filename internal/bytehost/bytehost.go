// Package bytehost provides a dependency-free host.Host backed by a plain growable
// []byte, for embedding the allocator with no WASM runtime present and for unit tests.
package bytehost

import (
	"encoding/binary"
	"fmt"

	"github.com/arenabyte/segalloc/internal/host"
)

// Host is a host.Host whose memory is a Go slice that only ever grows, mirroring the
// monotonic-growth contract of a classical sbrk.
type Host struct {
	mem   []byte
	limit uint32 // 0 means unbounded
}

// New creates a Host. limit bounds the total number of bytes the heap may grow to,
// which is useful for exercising out-of-memory behavior deterministically in tests;
// a limit of 0 leaves growth bounded only by Go's own memory limits.
func New(limit uint32) *Host {
	return &Host{mem: make([]byte, 0, 4096), limit: limit}
}

// Extend implements host.Host.
func (h *Host) Extend(n uint32) (uint32, error) {
	prev := uint32(len(h.mem))
	next := prev + n
	if h.limit != 0 && next > h.limit {
		return 0, fmt.Errorf("bytehost: grow by %d would exceed limit %d: %w", n, h.limit, host.ErrOutOfMemory)
	}
	h.mem = append(h.mem, make([]byte, n)...)
	return prev, nil
}

// Bounds implements host.Host.
func (h *Host) Bounds() (uint32, uint32) {
	return 0, uint32(len(h.mem))
}

// ReadUint32 implements host.Host.
func (h *Host) ReadUint32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(h.mem[addr : addr+4])
}

// WriteUint32 implements host.Host.
func (h *Host) WriteUint32(addr uint32, v uint32) {
	binary.LittleEndian.PutUint32(h.mem[addr:addr+4], v)
}

// ReadBytes implements host.Host.
func (h *Host) ReadBytes(addr uint32, n uint32) []byte {
	out := make([]byte, n)
	copy(out, h.mem[addr:addr+n])
	return out
}

// WriteBytes implements host.Host.
func (h *Host) WriteBytes(addr uint32, data []byte) {
	copy(h.mem[addr:addr+uint32(len(data))], data)
}

// Len reports the current size of the backing memory, mainly for tests that want
// to assert on exact heap growth.
func (h *Host) Len() uint32 {
	return uint32(len(h.mem))
}

var _ host.Host = (*Host)(nil)
