package wcc

import "github.com/katalvlaran/graphcsr/nodeid"

// find follows parent pointers to the root of u's tree, path-halving as
// it goes: every other node visited gets its parent CAS'd directly to
// its grandparent, so repeated finds on the same chain get cheaper.
func find[N nodeid.ID](parent []N, u N) N {
	for {
		p := nodeid.AtomicLoad(&parent[u])
		if p == u {
			return u
		}
		gp := nodeid.AtomicLoad(&parent[p])
		nodeid.AtomicCAS(&parent[u], p, gp)
		u = gp
	}
}

// union links u and v's components by CAS'ing the higher-valued root
// onto the lower-valued one, retrying if another goroutine's concurrent
// union changed a root out from under it.
func union[N nodeid.ID](parent []N, u, v N) {
	for {
		pu := find(parent, u)
		pv := find(parent, v)
		if pu == pv {
			return
		}
		hi, lo := pu, pv
		if lo > hi {
			hi, lo = lo, hi
		}
		if nodeid.AtomicCAS(&parent[hi], hi, lo) {
			return
		}
	}
}
