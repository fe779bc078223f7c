package nodeid

import "sync/atomic"

// AtomicAdd performs a relaxed fetch-and-add on *addr and returns the new
// value, matching the "relaxed atomic fetch-add" discipline spec'd for
// degree histograms and scatter cursors: correctness never depends on the
// order in which concurrent adders interleave, only on the final sum.
func AtomicAdd[N ID](addr *N, delta N) N {
	switch p := any(addr).(type) {
	case *uint32:
		return N(atomic.AddUint32(p, uint32(delta)))
	case *uint64:
		return N(atomic.AddUint64(p, uint64(delta)))
	default:
		panic("nodeid: unsupported id width")
	}
}

// AtomicLoad performs a relaxed load of *addr.
func AtomicLoad[N ID](addr *N) N {
	switch p := any(addr).(type) {
	case *uint32:
		return N(atomic.LoadUint32(p))
	case *uint64:
		return N(atomic.LoadUint64(p))
	default:
		panic("nodeid: unsupported id width")
	}
}

// AtomicStore performs a relaxed store of val into *addr.
func AtomicStore[N ID](addr *N, val N) {
	switch p := any(addr).(type) {
	case *uint32:
		atomic.StoreUint32(p, uint32(val))
	case *uint64:
		atomic.StoreUint64(p, uint64(val))
	default:
		panic("nodeid: unsupported id width")
	}
}

// AtomicCAS compare-and-swaps *addr from old to new, reporting success.
// Union-find's link step relies on this to publish parent updates; per
// spec the success path needs at minimum acquire/release, which is what
// sync/atomic's CompareAndSwap already provides on every supported Go
// architecture.
func AtomicCAS[N ID](addr *N, old, new N) bool {
	switch p := any(addr).(type) {
	case *uint32:
		return atomic.CompareAndSwapUint32(p, uint32(old), uint32(new))
	case *uint64:
		return atomic.CompareAndSwapUint64(p, uint64(old), uint64(new))
	default:
		panic("nodeid: unsupported id width")
	}
}
