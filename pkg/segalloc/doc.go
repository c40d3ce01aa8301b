// Package segalloc is the public façade over internal/heap: a general-purpose
// dynamic memory allocator managing a single contiguous, monotonically growable
// region of byte-addressed memory.
//
// An Allocator is backed by a host.Host — internal/bytehost for a plain-slice
// heap, or internal/wazerohost for a WASM guest's linear memory — and exposes
// only the three primitives this kind of allocator is responsible for:
// allocation, deallocation, and reallocation.
package segalloc
