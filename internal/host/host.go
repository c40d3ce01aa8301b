// Package host defines the heap-extend / bounds-query primitive the allocator in
// internal/heap consumes from whatever backs its byte-addressed memory.
package host

import "errors"

// ErrOutOfMemory is wrapped by a Host implementation's Extend when it cannot grow
// further. Callers should use errors.Is against this sentinel rather than matching
// implementation-specific messages.
var ErrOutOfMemory = errors.New("host: cannot extend heap further")

// Host is the external collaborator named in the allocator's design: a single,
// monotonically growable byte region, addressed by uint32 offsets. The allocator
// never assumes anything about what backs it — a plain Go slice, a live WASM
// linear memory, or (in principle) anything else that can grow and be read/written
// a word or a byte range at a time.
type Host interface {
	// Extend grows the host by n bytes and returns the address of the first new
	// byte. It returns an error wrapping ErrOutOfMemory when it cannot grow by n
	// bytes; on error no bytes are considered added.
	Extend(n uint32) (prevBreak uint32, err error)

	// Bounds reports the current [start, end) byte range owned by this heap.
	Bounds() (start, end uint32)

	// ReadUint32 and WriteUint32 access a little-endian word at addr. Callers MUST
	// ensure addr falls within Bounds() and is 4-byte aligned; implementations are
	// free to panic on an out-of-range access rather than re-validate it, since the
	// allocator itself never produces one under correct use.
	ReadUint32(addr uint32) uint32
	WriteUint32(addr uint32, v uint32)

	// ReadBytes and WriteBytes move a raw payload range, used by Reallocate's
	// allocate-copy-free fallback.
	ReadBytes(addr uint32, n uint32) []byte
	WriteBytes(addr uint32, data []byte)
}
