package adjust

import "github.com/katalvlaran/morphtree/tree"

// collectionF groups, per gray level, the nodes of the target tree that must
// merge during one adjustment, and iterates the non-empty levels in the
// direction of the walk: increasing from b for a min-tree adjustment,
// decreasing from b for a max-tree adjustment.
//
// Buckets enforce set semantics through a per-node generation stamp, so
// overlapping parent paths insert each node once. Storage is reused across
// calls: reset clears only the touched buckets and advances the stamp token.
type collectionF struct {
	buckets [tree.MaxLevel + 1][]tree.NodeID
	touched []int

	present []uint32
	token   uint32

	maxtree bool
	cur     int
}

// reset clears the collection, sizes the stamp buffer for capacity node
// slots, and configures the walk to start at level b.
func (f *collectionF) reset(maxtree bool, b, capacity int) {
	for _, l := range f.touched {
		f.buckets[l] = f.buckets[l][:0]
	}
	f.touched = f.touched[:0]
	f.maxtree = maxtree
	f.cur = b

	if len(f.present) < capacity {
		f.present = append(f.present, make([]uint32, capacity-len(f.present))...)
	}
	f.token++
	if f.token == 0 {
		for i := range f.present {
			f.present[i] = 0
		}
		f.token = 1
	}
}

// add inserts id into the bucket of its level, ignoring duplicates.
func (f *collectionF) add(t *tree.Tree, id tree.NodeID) {
	if f.present[id] == f.token {
		return
	}
	f.present[id] = f.token
	level := t.Level(id)
	if len(f.buckets[level]) == 0 {
		f.touched = append(f.touched, level)
	}
	f.buckets[level] = append(f.buckets[level], id)
}

// addNodesOfPath walks the parent path from `from`, inserting every visited
// node, and stops once `to` has been inserted.
func (f *collectionF) addNodesOfPath(t *tree.Tree, from, to tree.NodeID) {
	t.ForEachPathToRoot(from, func(n tree.NodeID) bool {
		f.add(t, n)
		return n != to
	})
}

// firstLambda returns the first non-empty level starting at b, or -1 when
// the collection is empty. reset positioned the cursor at b.
func (f *collectionF) firstLambda() int {
	return f.nextLambda()
}

// nextLambda returns the next non-empty level in walk order, or -1 when
// exhausted.
func (f *collectionF) nextLambda() int {
	if f.maxtree {
		for f.cur >= 0 {
			l := f.cur
			f.cur--
			if len(f.buckets[l]) > 0 {
				return l
			}
		}
		return -1
	}
	for f.cur <= tree.MaxLevel {
		l := f.cur
		f.cur++
		if len(f.buckets[l]) > 0 {
			return l
		}
	}

	return -1
}

// mergedNodes returns the bucket at level lambda in insertion order.
func (f *collectionF) mergedNodes(lambda int) []tree.NodeID {
	return f.buckets[lambda]
}
