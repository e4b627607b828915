package opt

import (
	"github.com/katalvlaran/rmqlca/seq"
	"github.com/katalvlaran/rmqlca/tree"
)

// cartesianID is the id carried by each Cartesian-tree node: the node's
// position in the original sequence. The value itself is not duplicated
// here; it is recovered via seq.Sequence[V].At(pos) whenever needed, so the
// tree carries exactly one int of payload per node instead of the pair
// spec.md §4.7 describes literally.
type cartesianID struct {
	pos int
}

// buildCartesian runs the linear-time rightmost-path stack algorithm
// (spec.md §4.7) and returns the resulting tree plus a dense position ->
// node map (posMap[i] is the node created for position i).
//
// The stack always equals the tree's current right spine, in depth order,
// which is the algorithm's core invariant: every pop strips nodes whose
// value is no longer a lower bound for what remains to be inserted, and
// every push installs the new position as the bottom of the right spine.
func buildCartesian[V any](s seq.Sequence[V], less seq.Less[V]) (*tree.Tree[cartesianID], []tree.NodeRef) {
	n := s.Len()

	b := tree.NewBuilder[cartesianID]()
	valueOf := func(ref tree.NodeRef) V { return s.At(b.ID(ref).pos) }

	root := b.Leaf(cartesianID{pos: 0})
	stack := []tree.NodeRef{root}
	posMap := make([]tree.NodeRef, n)
	posMap[0] = root

	for c := 1; c < n; c++ {
		x := s.At(c)

		lastPopped := tree.NoNode
		for len(stack) > 0 && less(x, valueOf(stack[len(stack)-1])) {
			lastPopped = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}

		var children []tree.NodeRef
		if lastPopped != tree.NoNode {
			children = []tree.NodeRef{lastPopped} // left child: the popped right spine
		}
		node := b.Internal(cartesianID{pos: c}, children)

		if len(stack) == 0 {
			root = node // new root; previous root was lastPopped, now its child
		} else if top := stack[len(stack)-1]; lastPopped != tree.NoNode {
			// lastPopped was top's rightmost child; node takes over that slot.
			kids := b.Children(top)
			kids[len(kids)-1] = node
		} else {
			b.AddChild(top, node) // new rightmost child of the surviving top
		}

		stack = append(stack, node)
		posMap[c] = node
	}

	// posMap is already complete: each position's NodeRef was fixed the
	// moment its node was created and never changes afterward (the arena
	// only grows child lists by index, it never relocates a node), so the
	// post-construction depth-first walk spec.md §4.7 describes for a
	// pointer-based tree would be redundant work here — see DESIGN.md.
	return b.Finish(root), posMap
}
