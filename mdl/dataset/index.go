// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Match holds the result of projecting one (strain, stress) state onto the dataset
type Match struct {
	Idx  int     // index of nearest sample
	Eps  float64 // strain of nearest sample (unscaled)
	Sig  float64 // stress of nearest sample (unscaled)
	Dist float64 // Euclidean distance in rescaled space
}

// cacheEntry is a kd-tree tagged with the key it was built for
type cacheEntry struct {
	version int          // dataset version
	scale   float64      // sqrt of numerical stiffness
	tree    *kdtree.Tree // tree over (eps*scale, sig/scale)
	eps     []float64    // samples the tree was built from
	sig     []float64
}

// rescale maps a (strain, stress) pair into the space where Euclidean distances are taken
func rescale(eps, sig, scale float64) [2]float64 {
	return [2]float64{eps * scale, sig / scale}
}

// Build builds the spatial index for the given scale factor. The tree is reused if it was
// already built for the current samples with the same scale
func (o *Set) Build(scale float64) (err error) {
	_, err = o.index(scale)
	return
}

// index returns the cache entry for scale, building it if the cached key does not match
func (o *Set) index(scale float64) (entry *cacheEntry, err error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, chk.Err("scale factor must be positive and finite; got %v", scale)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.Eps) == 0 {
		return nil, chk.Err("material data has not been loaded")
	}
	if o.cache != nil && o.cache.version == o.version && o.cache.scale == scale {
		return o.cache, nil
	}
	pts := make(points, len(o.Eps))
	for i := range o.Eps {
		pts[i] = point{X: rescale(o.Eps[i], o.Sig[i], scale), Idx: i}
	}
	o.cache = &cacheEntry{version: o.version, scale: scale, tree: kdtree.New(pts, false), eps: o.Eps, sig: o.Sig}
	return o.cache, nil
}

// Nearest projects each (eps[i], sig[i]) onto the dataset using the rescaled metric
//  Input:
//   eps, sig -- [nq] query strains and stresses
//   scale    -- sqrt of numerical stiffness: strains are multiplied and stresses divided by it
//  Output:
//   res -- [nq] nearest samples. Ties are resolved in favour of the lowest sample index
func (o *Set) Nearest(eps, sig []float64, scale float64) (res []Match, err error) {
	if len(eps) != len(sig) {
		return nil, chk.Err("number of strains (%d) and stresses (%d) must be equal", len(eps), len(sig))
	}
	entry, err := o.index(scale)
	if err != nil {
		return
	}
	res = make([]Match, len(eps))
	for i := range eps {
		q := point{X: rescale(eps[i], sig[i], scale), Idx: -1}
		idx, d2 := nearest(entry.tree, q)
		res[i] = Match{Idx: idx, Eps: entry.eps[idx], Sig: entry.sig[idx], Dist: math.Sqrt(d2)}
	}
	return
}

// nearest returns the lowest-indexed sample among those at minimum distance from q
func nearest(tree *kdtree.Tree, q point) (idx int, d2 float64) {
	c, d2 := tree.Nearest(q)
	idx = c.(point).Idx
	keep := kdtree.NewDistKeeper(d2)
	tree.NearestSet(keep, q)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue // sentinel
		}
		if j := cd.Comparable.(point).Idx; j < idx {
			idx = j
		}
	}
	return
}
