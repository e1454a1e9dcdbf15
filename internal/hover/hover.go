// Package hover resolves cursor positions to declaration signatures.
// Resolution is a pure read over a built project index; every query is
// independent and safe to run concurrently.
package hover

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/tliron/commonlog"

	"github.com/kls-dev/kls/internal/index"
	"github.com/kls-dev/kls/internal/kotlin"
	"github.com/kls-dev/kls/internal/parser"
	"github.com/kls-dev/kls/internal/span"
)

var log = commonlog.GetLogger("kls.hover")

// ResolutionError reports a broken link in a cross-file lookup chain:
// the declared type, the file named after it, or the member inside it.
type ResolutionError struct {
	Missing string
	Name    string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s %q", e.Missing, e.Name)
}

// Resolver answers hover queries against one project index.
type Resolver struct {
	ix *index.ProjectIndex
}

func New(ix *index.ProjectIndex) *Resolver {
	return &Resolver{ix: ix}
}

// Hover returns the rendered signature for the declaration referenced at
// pos, or "" when there is nothing to show. An empty result is normal
// for most cursor positions; errors are reserved for malformed state and
// broken cross-file links.
func (r *Resolver) Hover(path string, pos span.Position) (string, error) {
	entry, ok := r.ix.Entry(path)
	if !ok || entry.Tree == nil || entry.File == nil {
		return "", nil
	}

	node := parser.NodeAt(entry.Tree.RootNode(), pos)
	if node == nil {
		return "", nil
	}

	parent := node.Parent()
	if parent == nil {
		return "", fmt.Errorf("node at %s has no parent", pos)
	}

	switch parent.Type() {
	case "call_expression":
		name := span.Text(node, entry.Content)
		if fn := entry.File.FindFunction(name); fn != nil {
			return fence(fn.Signature()), nil
		}
		return "", nil
	case "navigation_expression":
		name := span.Text(node, entry.Content)
		if p := entry.File.FindProperty(name); p != nil {
			return fence(p.Signature()), nil
		}
		return "", nil
	case "navigation_suffix":
		return r.resolveNavigationSuffix(entry, node, parent)
	default:
		if rendered := resolveLocalIdentifier(node, entry.Content); rendered != "" {
			return fence(rendered), nil
		}
		log.Debugf("hover not yet supported for %s at %s", parent.Type(), pos)
		return "", nil
	}
}

// resolveNavigationSuffix follows a chained access "a.b" across files:
// the left-hand side's declared type names the file (one class per file),
// and that file's declarations are searched for the member.
func (r *Resolver) resolveNavigationSuffix(entry *index.Entry, node, suffix *sitter.Node) (string, error) {
	member := span.Text(node, entry.Content)

	navigation := suffix.Parent()
	if navigation == nil {
		return "", fmt.Errorf("navigation suffix at %s has no parent", span.FromNode(suffix).Start)
	}
	left := navigation.Child(0)
	if left == nil || left.Type() != "simple_identifier" {
		return "", nil
	}
	leftName := span.Text(left, entry.Content)

	typeName := declaredTypeName(entry.File, leftName)
	if typeName == "" {
		return "", &ResolutionError{Missing: "type of", Name: leftName}
	}

	target := r.ix.FindFileByStem(typeName)
	if target == nil || target.File == nil {
		return "", &ResolutionError{Missing: "file for type", Name: typeName}
	}

	if fn := target.File.FindFunction(member); fn != nil {
		return fence(fn.Signature()), nil
	}
	if p := target.File.FindProperty(member); p != nil {
		return fence(p.Signature()), nil
	}
	return "", &ResolutionError{Missing: "member", Name: typeName + "." + member}
}

// declaredTypeName resolves the type of a named property within file:
// the explicit annotation wins, else a constructor-call initializer
// ("val f = Foo()") names the type.
func declaredTypeName(file *kotlin.File, name string) string {
	p := file.FindProperty(name)
	if p == nil {
		return ""
	}

	if t := p.DeclaredType(); t != nil {
		return baseTypeName(t.Name)
	}

	init := p.Initializer
	if init != nil && init.Kind == kotlin.ExprCall &&
		init.Inner != nil && init.Inner.Kind == kotlin.ExprIdentifier {
		return init.Inner.Identifier
	}
	return ""
}

// baseTypeName strips nullability and type arguments: "Foo<Int>?" names
// the file Foo.kt.
func baseTypeName(name string) string {
	name = strings.TrimSuffix(name, "?")
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	return name
}

// resolveLocalIdentifier renders "name: Type" for an identifier that is
// a parameter or a typed local of the enclosing function.
func resolveLocalIdentifier(node *sitter.Node, content []byte) string {
	if node.Type() != "simple_identifier" {
		return ""
	}
	name := span.Text(node, content)

	fnNode := enclosingFunction(node)
	if fnNode == nil {
		return ""
	}
	declaration, err := kotlin.NewDeclaration(fnNode, content)
	if err != nil || declaration.Kind != kotlin.DeclFunction {
		return ""
	}
	fn := declaration.Function

	for i := range fn.Parameters {
		if fn.Parameters[i].Name == name {
			return fn.Parameters[i].String()
		}
	}

	if fn.Body == nil {
		return ""
	}
	for i := range fn.Body.Statements {
		s := &fn.Body.Statements[i]
		if s.Kind != kotlin.StmtDeclaration || s.Declaration.Kind != kotlin.DeclProperty {
			continue
		}
		p := s.Declaration.Property
		if p.Name() != name {
			continue
		}
		if t := p.DeclaredType(); t != nil {
			return fmt.Sprintf("%s: %s", name, t.String())
		}
	}
	return ""
}

func enclosingFunction(node *sitter.Node) *sitter.Node {
	for n := node.Parent(); n != nil; n = n.Parent() {
		if n.Type() == "function_declaration" {
			return n
		}
	}
	return nil
}

func fence(signature string) string {
	return fmt.Sprintf("```kotlin\n%s\n```", signature)
}
