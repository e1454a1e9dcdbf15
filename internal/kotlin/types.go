package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// TypeKind discriminates the type grammar: a type is either a named
// (nullable or non-nullable) reference or a function type, never both.
type TypeKind int

const (
	TypeNonNullable TypeKind = iota
	TypeNullable
	TypeFunction
)

func (k TypeKind) String() string {
	switch k {
	case TypeNonNullable:
		return "non-nullable"
	case TypeNullable:
		return "nullable"
	case TypeFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Type is one Kotlin type reference.
type Type struct {
	Kind TypeKind

	// Name holds the verbatim type text for named references,
	// including any type arguments ("List<String>", "Int?").
	Name string

	// Modifiers carries annotations and "suspend" recovered from the
	// type_modifiers sibling preceding the type node; the grammar attaches
	// them outside the type production itself.
	Modifiers []string

	// Function-type payload.
	Parameters []FunctionTypeParameter
	ReturnType *Type
}

// FunctionTypeParameter is one parameter of a function type. Both the
// named form "(x: Int) -> R" and the bare form "(Int) -> R" are legal;
// Name is empty for the bare form.
type FunctionTypeParameter struct {
	Name string
	Type Type
}

var typeKinds = map[string]bool{
	"user_type":     true,
	"nullable_type": true,
	"function_type": true,
}

func isTypeKind(kind string) bool {
	return typeKinds[kind]
}

// NewType builds a Type from a CST type node. The node's preceding sibling
// is inspected for type modifiers: this is the only place annotations and
// "suspend" on a type are visible.
func NewType(node *sitter.Node, content []byte) (Type, error) {
	modifiers := precedingTypeModifiers(node, content)

	switch node.Type() {
	case "user_type":
		return Type{Kind: TypeNonNullable, Name: span.Text(node, content), Modifiers: modifiers}, nil
	case "nullable_type":
		return Type{Kind: TypeNullable, Name: span.Text(node, content), Modifiers: modifiers}, nil
	case "function_type":
		t, err := newFunctionType(node, content)
		if err != nil {
			return Type{}, err
		}
		t.Modifiers = modifiers
		return t, nil
	default:
		return Type{}, unsupported("Type", node, content)
	}
}

func precedingTypeModifiers(node *sitter.Node, content []byte) []string {
	prev := node.PrevSibling()
	if prev == nil || prev.Type() != "type_modifiers" {
		return nil
	}
	var modifiers []string
	for i := 0; i < int(prev.ChildCount()); i++ {
		modifiers = append(modifiers, span.Text(prev.Child(i), content))
	}
	return modifiers
}

func newFunctionType(node *sitter.Node, content []byte) (Type, error) {
	t := Type{Kind: TypeFunction}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "->":
		case child.Type() == "function_type_parameters":
			params, err := functionTypeParameters(child, content)
			if err != nil {
				return Type{}, err
			}
			t.Parameters = params
		case isTypeKind(child.Type()):
			ret, err := NewType(child, content)
			if err != nil {
				return Type{}, err
			}
			t.ReturnType = &ret
		default:
			return Type{}, unsupported("Type.Function", child, content)
		}
	}

	if t.Parameters == nil {
		return Type{}, missing("Type.Function", "parameters", node)
	}
	if t.ReturnType == nil {
		return Type{}, missing("Type.Function", "return type", node)
	}
	return t, nil
}

func functionTypeParameters(node *sitter.Node, content []byte) ([]FunctionTypeParameter, error) {
	params := make([]FunctionTypeParameter, 0, int(node.ChildCount()))
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "(" || child.Type() == ")" || child.Type() == ",":
		case child.Type() == "parameter":
			param, err := namedFunctionTypeParameter(child, content)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return nil, err
			}
			params = append(params, FunctionTypeParameter{Type: t})
		default:
			return nil, unsupported("Type.Function.Params", child, content)
		}
	}
	return params, nil
}

func namedFunctionTypeParameter(node *sitter.Node, content []byte) (FunctionTypeParameter, error) {
	var param FunctionTypeParameter
	var haveType bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == ":":
		case child.Type() == "simple_identifier":
			param.Name = span.Text(child, content)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return FunctionTypeParameter{}, err
			}
			param.Type = t
			haveType = true
		default:
			return FunctionTypeParameter{}, unsupported("FunctionTypeParameter", child, content)
		}
	}

	if param.Name == "" {
		return FunctionTypeParameter{}, missing("FunctionTypeParameter", "identifier", node)
	}
	if !haveType {
		return FunctionTypeParameter{}, missing("FunctionTypeParameter", "parameter type", node)
	}
	return param, nil
}
