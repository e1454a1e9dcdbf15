package kotlin

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// UnsupportedGrammarError marks a CST node kind that has no translation
// rule. Construction fails hard on these: silently skipping a production
// would corrupt the model.
type UnsupportedGrammarError struct {
	Construct string
	Kind      string
	Text      string
	Span      span.Span
}

func (e *UnsupportedGrammarError) Error() string {
	return fmt.Sprintf("[%s] unhandled node %s %q at %s", e.Construct, e.Kind, e.Text, e.Span.Start)
}

// MissingChildError marks an expected structural child (by fixed position
// or grammar role) that is absent from a CST node.
type MissingChildError struct {
	Construct string
	Role      string
	Span      span.Span
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("[%s] no %s found at %s", e.Construct, e.Role, e.Span.Start)
}

func unsupported(construct string, node *sitter.Node, content []byte) error {
	return &UnsupportedGrammarError{
		Construct: construct,
		Kind:      node.Type(),
		Text:      span.Text(node, content),
		Span:      span.FromNode(node),
	}
}

func missing(construct, role string, node *sitter.Node) error {
	return &MissingChildError{
		Construct: construct,
		Role:      role,
		Span:      span.FromNode(node),
	}
}
