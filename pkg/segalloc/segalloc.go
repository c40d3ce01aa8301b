package segalloc

import (
	"github.com/arenabyte/segalloc/internal/heap"
	"github.com/arenabyte/segalloc/internal/host"
)

// Options configures a new Allocator. The zero Options is valid and selects
// internal/heap's defaults.
type Options struct {
	// ChunkSize is passed through to heap.Config.ChunkSize, which the heap does
	// not consult: growth always requests at least 4096 bytes from the host.
	// Zero selects heap.DefaultConfig's value.
	ChunkSize uint32
	// InitialExtension is how much the heap grows immediately on New. Zero
	// selects heap.DefaultConfig's value.
	InitialExtension uint32
}

func (o Options) toConfig() *heap.Config {
	cfg := heap.DefaultConfig()
	if o.ChunkSize != 0 {
		cfg.ChunkSize = o.ChunkSize
	}
	if o.InitialExtension != 0 {
		cfg.InitialExtension = o.InitialExtension
	}
	return cfg
}

// Allocator is a ready-to-use memory allocator over h. It wraps internal/heap's
// engine so that callers never see the internal package's types, only this
// façade's pointer-and-size vocabulary.
type Allocator struct {
	hp *heap.Heap
}

// New initializes an Allocator over h. opts may be the zero value.
func New(h host.Host, opts Options) (*Allocator, error) {
	hp, err := heap.Init(h, opts.toConfig())
	if err != nil {
		return nil, err
	}
	return &Allocator{hp: hp}, nil
}

// Allocate reserves at least size bytes and returns a pointer to the start of
// the usable region, or ok == false if the request could not be satisfied.
func (a *Allocator) Allocate(size uint32) (ptr uint32, ok bool) {
	return a.hp.Allocate(size)
}

// Free releases the allocation at ptr. ptr must have come from Allocate or
// Reallocate on this same Allocator; ptr == 0 is a no-op.
func (a *Allocator) Free(ptr uint32) {
	a.hp.Free(ptr)
}

// Reallocate resizes the allocation at ptr to hold at least size bytes,
// preserving its existing content up to the smaller of the old and new sizes.
// ptr == 0 behaves like Allocate; size == 0 behaves like Free.
func (a *Allocator) Reallocate(ptr uint32, size uint32) (newPtr uint32, ok bool) {
	return a.hp.Reallocate(ptr, size)
}

// Bounds reports the allocator's current [start, end) byte range within its host.
func (a *Allocator) Bounds() (start, end uint32) {
	return a.hp.Bounds()
}
