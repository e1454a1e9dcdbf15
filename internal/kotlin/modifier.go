package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// ModifierKind classifies a declaration modifier by its grammar production.
type ModifierKind int

const (
	ModifierVisibility ModifierKind = iota
	ModifierClass
	ModifierAnnotation
	ModifierInheritance
	ModifierMember
	ModifierFunction
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierVisibility:
		return "visibility"
	case ModifierClass:
		return "class"
	case ModifierAnnotation:
		return "annotation"
	case ModifierInheritance:
		return "inheritance"
	case ModifierMember:
		return "member"
	case ModifierFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Modifier is one modifier on a class, property, or function declaration,
// stored with its verbatim source text ("private", "@Suppress(...)", ...).
type Modifier struct {
	Kind ModifierKind
	Text string
}

func newModifier(node *sitter.Node, content []byte) (Modifier, error) {
	text := span.Text(node, content)
	switch node.Type() {
	case "visibility_modifier":
		return Modifier{Kind: ModifierVisibility, Text: text}, nil
	case "class_modifier":
		return Modifier{Kind: ModifierClass, Text: text}, nil
	case "annotation":
		return Modifier{Kind: ModifierAnnotation, Text: text}, nil
	case "inheritance_modifier":
		return Modifier{Kind: ModifierInheritance, Text: text}, nil
	case "member_modifier":
		return Modifier{Kind: ModifierMember, Text: text}, nil
	case "function_modifier":
		return Modifier{Kind: ModifierFunction, Text: text}, nil
	default:
		return Modifier{}, unsupported("Modifier", node, content)
	}
}

// collectModifiers reads the children of a "modifiers" node.
func collectModifiers(node *sitter.Node, content []byte) ([]Modifier, error) {
	var modifiers []Modifier
	for i := 0; i < int(node.ChildCount()); i++ {
		m, err := newModifier(node.Child(i), content)
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, m)
	}
	return modifiers, nil
}
