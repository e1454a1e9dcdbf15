package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

type DeclKind int

const (
	DeclClass DeclKind = iota
	DeclObject
	DeclFunction
	DeclProperty
	DeclTypeAlias
)

// Declaration is one top-level or local declaration.
type Declaration struct {
	Kind      DeclKind
	Class     *Class
	Object    *Object
	Function  *Function
	Property  *Property
	TypeAlias *TypeAlias
}

type TypeAlias struct {
	Modifiers []Modifier
	Name      string
	Type      Type
}

var declarationKinds = map[string]bool{
	"class_declaration":    true,
	"object_declaration":   true,
	"companion_object":     true,
	"function_declaration": true,
	"property_declaration": true,
	"type_alias":           true,
}

func isDeclarationKind(kind string) bool {
	return declarationKinds[kind]
}

func NewDeclaration(node *sitter.Node, content []byte) (Declaration, error) {
	switch node.Type() {
	case "class_declaration":
		class, err := newClass(node, content)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Kind: DeclClass, Class: &class}, nil
	case "object_declaration", "companion_object":
		object, err := newObject(node, content)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Kind: DeclObject, Object: &object}, nil
	case "function_declaration":
		function, err := newFunction(node, content)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Kind: DeclFunction, Function: &function}, nil
	case "property_declaration":
		property, err := newProperty(node, content)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Kind: DeclProperty, Property: &property}, nil
	case "type_alias":
		alias, err := newTypeAlias(node, content)
		if err != nil {
			return Declaration{}, err
		}
		return Declaration{Kind: DeclTypeAlias, TypeAlias: &alias}, nil
	default:
		return Declaration{}, unsupported("Declaration", node, content)
	}
}

func newTypeAlias(node *sitter.Node, content []byte) (TypeAlias, error) {
	alias := TypeAlias{}
	sawType := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return TypeAlias{}, err
			}
			alias.Modifiers = modifiers
		case child.Type() == "type_identifier":
			alias.Name = span.Text(child, content)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return TypeAlias{}, err
			}
			alias.Type = t
			sawType = true
		}
	}

	if alias.Name == "" {
		return TypeAlias{}, missing("TypeAlias", "name", node)
	}
	if !sawType {
		return TypeAlias{}, missing("TypeAlias", "type", node)
	}
	return alias, nil
}

// Name returns the declared name of the declaration, or "" when the
// declaration kind has no single name.
func (d *Declaration) Name() string {
	switch d.Kind {
	case DeclClass:
		return d.Class.Name
	case DeclObject:
		return d.Object.Name
	case DeclFunction:
		return d.Function.Name
	case DeclProperty:
		return d.Property.Name()
	case DeclTypeAlias:
		return d.TypeAlias.Name
	}
	return ""
}
