package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// NodeAt returns the innermost CST node whose span covers pos, or nil when
// no node covers it. The tree is visited in pre-order; descendants are
// visited after their ancestors and a descendant's span is always contained
// in its ancestor's, so the last covering node recorded is the innermost one.
func NodeAt(root *sitter.Node, pos span.Position) *sitter.Node {
	var best *sitter.Node
	Walk(root, func(node *sitter.Node) {
		if span.FromNode(node).Contains(pos) {
			best = node
		}
	})
	return best
}
