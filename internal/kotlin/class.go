package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
)

func (k ClassKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum class"
	default:
		return "class"
	}
}

// TypeParameter is one generic parameter with an optional upper bound.
type TypeParameter struct {
	Name  string
	Bound *Type
}

func typeParameters(node *sitter.Node, content []byte) ([]TypeParameter, error) {
	var parameters []TypeParameter
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "type_parameter" {
			continue
		}

		parameter := TypeParameter{}
		for j := 0; j < int(child.ChildCount()); j++ {
			sub := child.Child(j)
			switch {
			case sub.Type() == "type_identifier":
				parameter.Name = span.Text(sub, content)
			case isTypeKind(sub.Type()):
				bound, err := NewType(sub, content)
				if err != nil {
					return nil, err
				}
				parameter.Bound = &bound
			}
		}
		if parameter.Name == "" {
			return nil, missing("TypeParameter", "name", child)
		}
		parameters = append(parameters, parameter)
	}
	return parameters, nil
}

type ClassParameterMutability int

const (
	ParameterPlain ClassParameterMutability = iota
	ParameterVal
	ParameterVar
)

// ClassParameter is one primary-constructor parameter. Mutability
// ParameterPlain means it is a constructor argument only, not a property.
type ClassParameter struct {
	Modifiers  []Modifier
	Mutability ClassParameterMutability
	Name       string
	Type       Type
	Default    *Expression
}

func newClassParameter(node *sitter.Node, content []byte) (ClassParameter, error) {
	parameter := ClassParameter{}
	sawType := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return ClassParameter{}, err
			}
			parameter.Modifiers = modifiers
		case child.Type() == "val":
			parameter.Mutability = ParameterVal
		case child.Type() == "var":
			parameter.Mutability = ParameterVar
		case child.Type() == "binding_pattern_kind":
			keyword := child.Child(0)
			if keyword == nil {
				return ClassParameter{}, missing("ClassParameter", "val or var", child)
			}
			switch keyword.Type() {
			case "val":
				parameter.Mutability = ParameterVal
			case "var":
				parameter.Mutability = ParameterVar
			default:
				return ClassParameter{}, unsupported("ClassParameter", keyword, content)
			}
		case child.Type() == "simple_identifier":
			parameter.Name = span.Text(child, content)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return ClassParameter{}, err
			}
			parameter.Type = t
			sawType = true
		case child.Type() == ":" || child.Type() == "=":
		case isExpressionKind(child.Type()):
			def, err := NewExpression(child, content)
			if err != nil {
				return ClassParameter{}, err
			}
			parameter.Default = &def
		default:
			return ClassParameter{}, unsupported("ClassParameter", child, content)
		}
	}

	if parameter.Name == "" {
		return ClassParameter{}, missing("ClassParameter", "name", node)
	}
	if !sawType {
		return ClassParameter{}, missing("ClassParameter", "type", node)
	}
	return parameter, nil
}

type PrimaryConstructor struct {
	Modifiers  []Modifier
	Parameters []ClassParameter
}

func newPrimaryConstructor(node *sitter.Node, content []byte) (PrimaryConstructor, error) {
	constructor := PrimaryConstructor{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return PrimaryConstructor{}, err
			}
			constructor.Modifiers = modifiers
		case "class_parameter":
			parameter, err := newClassParameter(child, content)
			if err != nil {
				return PrimaryConstructor{}, err
			}
			constructor.Parameters = append(constructor.Parameters, parameter)
		}
	}
	return constructor, nil
}

// SecondaryConstructor is a "constructor(...)" member, with its optional
// this/super delegation call and body.
type SecondaryConstructor struct {
	Modifiers  []Modifier
	Parameters []Parameter
	Delegation *ConstructorDelegation
	Body       []Statement
}

type ConstructorDelegationKind int

const (
	DelegateThis ConstructorDelegationKind = iota
	DelegateSuper
)

type ConstructorDelegation struct {
	Kind      ConstructorDelegationKind
	Arguments []ValueArgument
}

func newSecondaryConstructor(node *sitter.Node, content []byte) (SecondaryConstructor, error) {
	constructor := SecondaryConstructor{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return SecondaryConstructor{}, err
			}
			constructor.Modifiers = modifiers
		case "function_value_parameters":
			parameters, err := functionValueParameters(child, content)
			if err != nil {
				return SecondaryConstructor{}, err
			}
			constructor.Parameters = parameters
		case "constructor_delegation_call":
			delegation, err := constructorDelegation(child, content)
			if err != nil {
				return SecondaryConstructor{}, err
			}
			constructor.Delegation = &delegation
		case "statements":
			statements, err := getStatements(child, content)
			if err != nil {
				return SecondaryConstructor{}, err
			}
			constructor.Body = statements
		}
	}
	return constructor, nil
}

func constructorDelegation(node *sitter.Node, content []byte) (ConstructorDelegation, error) {
	first := node.Child(0)
	if first == nil {
		return ConstructorDelegation{}, missing("ConstructorDelegation", "target", node)
	}

	delegation := ConstructorDelegation{}
	switch first.Type() {
	case "this":
		delegation.Kind = DelegateThis
	case "super":
		delegation.Kind = DelegateSuper
	default:
		return ConstructorDelegation{}, unsupported("ConstructorDelegation", first, content)
	}

	if argumentsNode := node.Child(1); argumentsNode != nil && argumentsNode.Type() == "value_arguments" {
		arguments, err := getValueArguments(argumentsNode, content)
		if err != nil {
			return ConstructorDelegation{}, err
		}
		delegation.Arguments = arguments
	}
	return delegation, nil
}

// ClassBody holds the members of a class, interface, object or enum.
// Enum bodies additionally carry their entries; ordinary bodies leave
// Entries empty. Nesting recurses through Classes, Objects and
// Companions without depth limit.
type ClassBody struct {
	Entries      []EnumEntry
	Properties   []Property
	Functions    []Function
	Classes      []Class
	Objects      []Object
	Companions   []Object
	Constructors []SecondaryConstructor
}

// EnumEntry is one enum constant, optionally with constructor arguments
// and its own body.
type EnumEntry struct {
	Modifiers []Modifier
	Name      string
	Arguments []ValueArgument
	Body      *ClassBody
}

func newClassBody(node *sitter.Node, content []byte) (ClassBody, error) {
	body := ClassBody{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if err := body.addMember(child, content); err != nil {
			return ClassBody{}, err
		}
	}
	return body, nil
}

// newEnumClassBody reads entries plus any ordinary members that follow
// the entry list.
func newEnumClassBody(node *sitter.Node, content []byte) (ClassBody, error) {
	body := ClassBody{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "enum_entry" {
			entry, err := newEnumEntry(child, content)
			if err != nil {
				return ClassBody{}, err
			}
			body.Entries = append(body.Entries, entry)
			continue
		}
		if err := body.addMember(child, content); err != nil {
			return ClassBody{}, err
		}
	}
	return body, nil
}

func (b *ClassBody) addMember(child *sitter.Node, content []byte) error {
	switch child.Type() {
	case "property_declaration":
		property, err := newProperty(child, content)
		if err != nil {
			return err
		}
		b.Properties = append(b.Properties, property)
	case "function_declaration":
		function, err := newFunction(child, content)
		if err != nil {
			return err
		}
		b.Functions = append(b.Functions, function)
	case "class_declaration":
		class, err := newClass(child, content)
		if err != nil {
			return err
		}
		b.Classes = append(b.Classes, class)
	case "object_declaration":
		object, err := newObject(child, content)
		if err != nil {
			return err
		}
		b.Objects = append(b.Objects, object)
	case "companion_object":
		companion, err := newObject(child, content)
		if err != nil {
			return err
		}
		b.Companions = append(b.Companions, companion)
	case "secondary_constructor":
		constructor, err := newSecondaryConstructor(child, content)
		if err != nil {
			return err
		}
		b.Constructors = append(b.Constructors, constructor)
	}
	return nil
}

func newEnumEntry(node *sitter.Node, content []byte) (EnumEntry, error) {
	entry := EnumEntry{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return EnumEntry{}, err
			}
			entry.Modifiers = modifiers
		case "simple_identifier":
			entry.Name = span.Text(child, content)
		case "value_arguments":
			arguments, err := getValueArguments(child, content)
			if err != nil {
				return EnumEntry{}, err
			}
			entry.Arguments = arguments
		case "class_body":
			body, err := newClassBody(child, content)
			if err != nil {
				return EnumEntry{}, err
			}
			entry.Body = &body
		}
	}
	if entry.Name == "" {
		return EnumEntry{}, missing("EnumEntry", "name", node)
	}
	return entry, nil
}

// Class is a class, interface or enum declaration.
type Class struct {
	Kind           ClassKind
	Modifiers      []Modifier
	Name           string
	TypeParameters []TypeParameter
	Constructor    *PrimaryConstructor
	Delegations    []Delegation
	Body           *ClassBody
}

func newClass(node *sitter.Node, content []byte) (Class, error) {
	class := Class{}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "class":
		case "interface":
			class.Kind = KindInterface
		case "enum":
			class.Kind = KindEnum
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Class{}, err
			}
			class.Modifiers = modifiers
		case "type_identifier":
			class.Name = span.Text(child, content)
		case "type_parameters":
			parameters, err := typeParameters(child, content)
			if err != nil {
				return Class{}, err
			}
			class.TypeParameters = parameters
		case "primary_constructor":
			constructor, err := newPrimaryConstructor(child, content)
			if err != nil {
				return Class{}, err
			}
			class.Constructor = &constructor
		case "delegation_specifier":
			delegation, err := newDelegation(child, content)
			if err != nil {
				return Class{}, err
			}
			class.Delegations = append(class.Delegations, delegation)
		case "class_body":
			body, err := newClassBody(child, content)
			if err != nil {
				return Class{}, err
			}
			class.Body = &body
		case "enum_class_body":
			body, err := newEnumClassBody(child, content)
			if err != nil {
				return Class{}, err
			}
			class.Body = &body
		}
	}

	if class.Name == "" {
		return Class{}, missing("Class", "name", node)
	}
	return class, nil
}

// FindFunction looks up a direct member function by name. Nested bodies
// are not searched.
func (b *ClassBody) FindFunction(name string) *Function {
	if b == nil {
		return nil
	}
	for i := range b.Functions {
		if b.Functions[i].Name == name {
			return &b.Functions[i]
		}
	}
	return nil
}

// FindProperty looks up a member property by declared name.
func (b *ClassBody) FindProperty(name string) *Property {
	if b == nil {
		return nil
	}
	for i := range b.Properties {
		if b.Properties[i].Name() == name {
			return &b.Properties[i]
		}
	}
	return nil
}
