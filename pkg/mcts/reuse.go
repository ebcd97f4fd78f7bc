package mcts

// findState searches the tree depth-first for a node whose state equals
// target. Subtrees whose progress measure already exceeds the target's are
// pruned without descending: the measure never decreases along a transition,
// so no descendant can match.
func findState[S GameState[S, T], T comparable](node *Node[S, T], target S) *Node[S, T] {
	if node.State.Progress() > target.Progress() {
		return nil
	}
	if node.State.Equal(target) {
		return node
	}
	for _, child := range node.Children {
		if match := findState(child, target); match != nil {
			return match
		}
	}
	return nil
}
