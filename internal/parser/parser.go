// Package parser wraps the tree-sitter Kotlin grammar behind the small
// surface the analysis core needs: parsing source bytes into a CST and
// point queries against the resulting tree. The CST is consumed read-only;
// the semantic model is built elsewhere.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"
)

// Parser parses Kotlin source into a concrete syntax tree.
// A Parser is not safe for concurrent use; create one per goroutine.
type Parser struct {
	inner *sitter.Parser
}

// New creates a parser configured for the Kotlin grammar.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(kotlin.GetLanguage())
	return &Parser{inner: p}
}

// Parse builds a CST from content. The returned tree keeps offsets into
// content, so callers must retain the byte slice alongside the tree.
func (p *Parser) Parse(ctx context.Context, content []byte) (*sitter.Tree, error) {
	tree, err := p.inner.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse kotlin source: %w", err)
	}
	return tree, nil
}

// Walk visits node and every descendant in pre-order.
func Walk(node *sitter.Node, visit func(*sitter.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), visit)
	}
}
