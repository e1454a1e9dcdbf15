package span

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Position is a zero-based (line, column) cursor location.
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p orders strictly before other, comparing
// lexicographically by (line, column).
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is the source region covered by one CST node.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Contains reports whether pos falls inside the span, start and end
// inclusive.
func (s Span) Contains(pos Position) bool {
	if pos.Before(s.Start) {
		return false
	}
	return !s.End.Before(pos)
}

// FromNode extracts the line/column span of a tree-sitter node.
func FromNode(node *sitter.Node) Span {
	return Span{
		Start: Position{Line: node.StartPoint().Row, Column: node.StartPoint().Column},
		End:   Position{Line: node.EndPoint().Row, Column: node.EndPoint().Column},
	}
}

// Text returns the verbatim source substring covered by node.
func Text(node *sitter.Node, content []byte) string {
	return node.Content(content)
}
