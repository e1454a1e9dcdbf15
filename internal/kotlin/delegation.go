package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"
)

type DelegationKind int

const (
	DelegationType DelegationKind = iota
	DelegationConstructor
)

// Delegation is one supertype entry: either a bare type (interface
// supertype) or a constructor invocation (superclass call).
type Delegation struct {
	Kind        DelegationKind
	Type        *Type
	Constructor *ConstructorInvocation
}

func newDelegation(node *sitter.Node, content []byte) (Delegation, error) {
	child := node.Child(0)
	if child == nil {
		return Delegation{}, missing("Delegation", "specifier", node)
	}

	switch child.Type() {
	case "user_type", "nullable_type":
		t, err := NewType(child, content)
		if err != nil {
			return Delegation{}, err
		}
		return Delegation{Kind: DelegationType, Type: &t}, nil
	case "constructor_invocation":
		invocation, err := newConstructorInvocation(child, content)
		if err != nil {
			return Delegation{}, err
		}
		return Delegation{Kind: DelegationConstructor, Constructor: &invocation}, nil
	default:
		return Delegation{}, unsupported("Delegation", child, content)
	}
}

// ConstructorInvocation is a supertype call like "Base(1)".
type ConstructorInvocation struct {
	Type      Type
	Arguments []ValueArgument
}

func newConstructorInvocation(node *sitter.Node, content []byte) (ConstructorInvocation, error) {
	invocation := ConstructorInvocation{}
	sawType := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "user_type":
			t, err := NewType(child, content)
			if err != nil {
				return ConstructorInvocation{}, err
			}
			invocation.Type = t
			sawType = true
		case "value_arguments":
			arguments, err := getValueArguments(child, content)
			if err != nil {
				return ConstructorInvocation{}, err
			}
			invocation.Arguments = arguments
		default:
			return ConstructorInvocation{}, unsupported("ConstructorInvocation", child, content)
		}
	}

	if !sawType {
		return ConstructorInvocation{}, missing("ConstructorInvocation", "type", node)
	}
	return invocation, nil
}
