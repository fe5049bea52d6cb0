//go:build cgo

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// allocKind records which deallocator owns an outbound pointer.
type allocKind uint8

const (
	kindString allocKind = iota + 1
	kindRegionInfo
	kindStringResult
	kindNumberTypeResult
	kindRegionInfoResult
	kindBoolResult
)

func (k allocKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindRegionInfo:
		return "RegionInfo"
	case kindStringResult:
		return "DrStringResult"
	case kindNumberTypeResult:
		return "DrNumberTypeResult"
	case kindRegionInfoResult:
		return "DrRegionInfoResult"
	case kindBoolResult:
		return "DrBoolResult"
	default:
		return "unknown"
	}
}

func (k allocKind) isResult() bool {
	return k >= kindStringResult && k <= kindBoolResult
}

// registry tracks the top-level pointers handed to callers. Members of a
// RegionInfo or result struct are owned by their parent and never appear
// here, so they cannot be freed on their own.
type registry struct {
	mu    sync.Mutex
	ptrs  map[uintptr]allocKind
	count atomic.Int64
}

var allocs = newRegistry()

func newRegistry() *registry {
	return &registry{ptrs: make(map[uintptr]allocKind)}
}

func (r *registry) track(p unsafe.Pointer, k allocKind) {
	r.mu.Lock()
	r.ptrs[uintptr(p)] = k
	r.mu.Unlock()
	r.count.Add(1)
}

// claim removes p if accept approves its kind. It reports the recorded kind
// and whether p was removed; an unknown p reports (0, false).
func (r *registry) claim(p unsafe.Pointer, accept func(allocKind) bool) (allocKind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.ptrs[uintptr(p)]
	if !ok || !accept(k) {
		return k, false
	}
	delete(r.ptrs, uintptr(p))
	r.count.Add(-1)
	return k, true
}

// live returns the number of pointers not yet released.
func (r *registry) live() int64 {
	return r.count.Load()
}

func isKind(want allocKind) func(allocKind) bool {
	return func(k allocKind) bool { return k == want }
}

func anyResult(k allocKind) bool { return k.isResult() }

func anyKind(allocKind) bool { return true }
