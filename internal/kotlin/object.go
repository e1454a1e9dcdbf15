package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// Object is an object declaration or a companion object. A companion
// without an explicit name keeps Name empty.
type Object struct {
	Modifiers   []Modifier
	Name        string
	Delegations []Delegation
	Body        *ClassBody
}

func newObject(node *sitter.Node, content []byte) (Object, error) {
	object := Object{}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "object", "companion", ":", ",":
		case "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Object{}, err
			}
			object.Modifiers = modifiers
		case "type_identifier":
			object.Name = span.Text(child, content)
		case "delegation_specifier":
			delegation, err := newDelegation(child, content)
			if err != nil {
				return Object{}, err
			}
			object.Delegations = append(object.Delegations, delegation)
		case "class_body":
			body, err := newClassBody(child, content)
			if err != nil {
				return Object{}, err
			}
			object.Body = &body
		default:
			return Object{}, unsupported("Object", child, content)
		}
	}

	return object, nil
}
