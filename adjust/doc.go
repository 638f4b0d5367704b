// Package adjust implements the incremental tree-adjustment engine: when a
// leaf or a subtree is pruned in one tree of a dual (min/max) component-tree
// pair, the complementary tree is rewired in place so it remains the
// component tree of the reconstructed image — without rebuilding.
//
// Both algorithms share one core loop. The trigger's pixels move from level
// a = f(p) to level b = g(p); the engine gathers the target-tree nodes whose
// flat zones touch the trigger, buckets them by level into the collection F
// (plus the carry set Fb of sub-roots outside the [min(a,b), max(a,b)]
// interval), and merges each non-empty bucket into a single union node while
// chaining the merged levels from b toward a. At the destination level b the
// trigger's flat zones are unioned — through the shared fzgraph.Graph — with
// whichever zones of the union node they touch. The walk terminates at
// tauStar, the deepest target-tree node intersecting the trigger, which is
// either replaced by the union chain or adopts it as a child.
//
//   - ByLeaf: the trigger is a single leaf (one flat zone).
//   - BySubtree: the trigger is a whole subtree; a proper-parts collector
//     tracks every trigger zone's carrier in the target tree and marks the
//     carriers that end up empty.
//
// All failure modes are preconditions and panic: triggering
// on a root, ByLeaf on a non-leaf, polarity mismatches. Nothing is retried;
// no call partially validates after mutating.
package adjust
