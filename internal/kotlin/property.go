package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

type PropertyMutability int

const (
	MutabilityVal PropertyMutability = iota
	MutabilityVar
)

func (m PropertyMutability) String() string {
	if m == MutabilityVar {
		return "var"
	}
	return "val"
}

// Property is a val/var declaration, top-level or member. Variables holds
// one entry for plain declarations and several for destructured ones. At
// most one of Initializer and Delegate is set.
type Property struct {
	Modifiers   []Modifier
	Receiver    *Type
	Variables   []VariableDeclaration
	Mutability  PropertyMutability
	Initializer *Expression
	Delegate    *Expression
	Getter      *Getter
	Setter      *Setter
}

// Name returns the declared name, or the first name of a destructured
// declaration.
func (p *Property) Name() string {
	if len(p.Variables) == 0 {
		return ""
	}
	return p.Variables[0].Name
}

// DeclaredType returns the explicit type annotation, if any. Inferred
// types are absent, never guessed.
func (p *Property) DeclaredType() *Type {
	if len(p.Variables) == 0 {
		return nil
	}
	return p.Variables[0].Type
}

func newProperty(node *sitter.Node, content []byte) (Property, error) {
	property := Property{}
	sawMutability := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Modifiers = modifiers
		case child.Type() == "var":
			property.Mutability = MutabilityVar
			sawMutability = true
		case child.Type() == "val":
			property.Mutability = MutabilityVal
			sawMutability = true
		case child.Type() == "binding_pattern_kind":
			// The grammar wraps the val/var keyword in a binding node.
			keyword := child.Child(0)
			if keyword == nil {
				return Property{}, missing("Property", "val or var", child)
			}
			switch keyword.Type() {
			case "var":
				property.Mutability = MutabilityVar
			case "val":
				property.Mutability = MutabilityVal
			default:
				return Property{}, unsupported("Property", keyword, content)
			}
			sawMutability = true
		case isTypeKind(child.Type()):
			receiver, err := NewType(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Receiver = &receiver
		case child.Type() == "variable_declaration":
			variable, err := newVariableDeclaration(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Variables = []VariableDeclaration{variable}
		case child.Type() == "multi_variable_declaration":
			variables, err := newMultiVariableDeclaration(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Variables = variables
		case child.Type() == "property_delegate":
			delegate, err := propertyDelegate(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Delegate = delegate
		case child.Type() == "getter":
			getter, err := newGetter(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Getter = &getter
		case child.Type() == "setter":
			setter, err := newSetter(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Setter = &setter
		case child.Type() == "." || child.Type() == "=" || child.Type() == ";":
		case isExpressionKind(child.Type()):
			initializer, err := NewExpression(child, content)
			if err != nil {
				return Property{}, err
			}
			property.Initializer = &initializer
		default:
			return Property{}, unsupported("Property", child, content)
		}
	}

	if !sawMutability {
		return Property{}, missing("Property", "val or var", node)
	}
	if len(property.Variables) == 0 {
		return Property{}, missing("Property", "variable declaration", node)
	}

	// Depending on formatting the grammar attaches accessors as the
	// property's following siblings instead of children; both accessors
	// can appear as consecutive siblings. The in-node location wins when
	// both are present.
siblings:
	for sibling := node.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
		switch sibling.Type() {
		case "getter":
			if property.Getter == nil {
				getter, err := newGetter(sibling, content)
				if err != nil {
					return Property{}, err
				}
				property.Getter = &getter
			}
		case "setter":
			if property.Setter == nil {
				setter, err := newSetter(sibling, content)
				if err != nil {
					return Property{}, err
				}
				property.Setter = &setter
			}
		default:
			break siblings
		}
	}

	return property, nil
}

func propertyDelegate(node *sitter.Node, content []byte) (*Expression, error) {
	child := node.Child(1)
	if child == nil {
		return nil, missing("Property.Delegate", "expression", node)
	}
	expr, err := NewExpression(child, content)
	if err != nil {
		return nil, err
	}
	return &expr, nil
}

// Getter is a custom get accessor; Body is nil for the bare "get" form.
type Getter struct {
	Modifiers []Modifier
	Body      *FunctionBody
}

func newGetter(node *sitter.Node, content []byte) (Getter, error) {
	getter := Getter{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "get", "(", ")":
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Getter{}, err
			}
			getter.Modifiers = modifiers
		case "function_body":
			body, err := newFunctionBody(child, content)
			if err != nil {
				return Getter{}, err
			}
			getter.Body = &body
		default:
			return Getter{}, unsupported("Getter", child, content)
		}
	}
	return getter, nil
}

// Setter is a custom set accessor with its optional value parameter.
type Setter struct {
	Modifiers []Modifier
	Parameter *VariableDeclaration
	Body      *FunctionBody
}

func newSetter(node *sitter.Node, content []byte) (Setter, error) {
	setter := Setter{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "set", "(", ")", ",":
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Setter{}, err
			}
			setter.Modifiers = modifiers
		case "parameter_with_optional_type", "parameter":
			parameter, err := newVariableDeclaration(child, content)
			if err != nil {
				return Setter{}, err
			}
			setter.Parameter = &parameter
		case "simple_identifier":
			setter.Parameter = &VariableDeclaration{Name: span.Text(child, content)}
		case "function_body":
			body, err := newFunctionBody(child, content)
			if err != nil {
				return Setter{}, err
			}
			setter.Body = &body
		default:
			return Setter{}, unsupported("Setter", child, content)
		}
	}
	return setter, nil
}
