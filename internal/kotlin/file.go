package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// Warning records a declaration that could not be translated, with the
// source region it covers. Warnings never abort file construction.
type Warning struct {
	Span span.Span
	Err  error
}

// File is the semantic model of one source file: package, imports and
// the top-level declarations that built successfully, in source order.
type File struct {
	Package      string
	Imports      []string
	Declarations []Declaration
	Warnings     []Warning
}

// NewFile builds the file model from a parsed tree. Each top-level
// declaration is attempted independently; a failed declaration lands in
// Warnings and the rest of the file is still extracted. A file with zero
// declarations is valid.
func NewFile(tree *sitter.Tree, content []byte) *File {
	file := &File{}
	root := tree.RootNode()
	if root == nil {
		return file
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch {
		case child.Type() == "package_header":
			file.Package = headerTarget(child, content)
		case child.Type() == "import_list":
			for j := 0; j < int(child.ChildCount()); j++ {
				if header := child.Child(j); header.Type() == "import_header" {
					file.Imports = append(file.Imports, headerTarget(header, content))
				}
			}
		case child.Type() == "import_header":
			file.Imports = append(file.Imports, headerTarget(child, content))
		case child.Type() == "comment" || child.Type() == "line_comment" ||
			child.Type() == "multiline_comment" || child.Type() == ";":
		case child.Type() == "getter" || child.Type() == "setter":
			// Consumed by the preceding property's sibling scan.
		case isDeclarationKind(child.Type()):
			declaration, err := NewDeclaration(child, content)
			if err != nil {
				file.Warnings = append(file.Warnings, Warning{Span: span.FromNode(child), Err: err})
				continue
			}
			file.Declarations = append(file.Declarations, declaration)
		default:
			file.Warnings = append(file.Warnings, Warning{
				Span: span.FromNode(child),
				Err:  unsupported("File", child, content),
			})
		}
	}

	return file
}

// headerTarget returns the text following the package or import keyword.
func headerTarget(node *sitter.Node, content []byte) string {
	target := node.Child(1)
	if target == nil {
		return ""
	}
	return span.Text(target, content)
}

// FindFunction searches top-level functions and then class, object and
// companion bodies, outermost first.
func (f *File) FindFunction(name string) *Function {
	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Kind == DeclFunction && d.Function.Name == name {
			return d.Function
		}
	}
	for i := range f.Declarations {
		if fn := f.Declarations[i].findMemberFunction(name); fn != nil {
			return fn
		}
	}
	return nil
}

func (d *Declaration) findMemberFunction(name string) *Function {
	var body *ClassBody
	switch d.Kind {
	case DeclClass:
		body = d.Class.Body
	case DeclObject:
		body = d.Object.Body
	}
	return body.findFunction(name)
}

func (b *ClassBody) findFunction(name string) *Function {
	if b == nil {
		return nil
	}
	if fn := b.FindFunction(name); fn != nil {
		return fn
	}
	for i := range b.Classes {
		if fn := b.Classes[i].Body.findFunction(name); fn != nil {
			return fn
		}
	}
	for i := range b.Objects {
		if fn := b.Objects[i].Body.findFunction(name); fn != nil {
			return fn
		}
	}
	for i := range b.Companions {
		if fn := b.Companions[i].Body.findFunction(name); fn != nil {
			return fn
		}
	}
	return nil
}

// FindProperty searches top-level properties and then class, object and
// companion bodies, outermost first.
func (f *File) FindProperty(name string) *Property {
	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Kind == DeclProperty && d.Property.Name() == name {
			return d.Property
		}
	}
	for i := range f.Declarations {
		if p := f.Declarations[i].findMemberProperty(name); p != nil {
			return p
		}
	}
	return nil
}

func (d *Declaration) findMemberProperty(name string) *Property {
	var body *ClassBody
	switch d.Kind {
	case DeclClass:
		body = d.Class.Body
	case DeclObject:
		body = d.Object.Body
	}
	return body.findProperty(name)
}

func (b *ClassBody) findProperty(name string) *Property {
	if b == nil {
		return nil
	}
	if p := b.FindProperty(name); p != nil {
		return p
	}
	for i := range b.Classes {
		if p := b.Classes[i].Body.findProperty(name); p != nil {
			return p
		}
	}
	for i := range b.Objects {
		if p := b.Objects[i].Body.findProperty(name); p != nil {
			return p
		}
	}
	for i := range b.Companions {
		if p := b.Companions[i].Body.findProperty(name); p != nil {
			return p
		}
	}
	return nil
}

// FindClass searches declarations for a class with the given name,
// including nested classes.
func (f *File) FindClass(name string) *Class {
	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Kind != DeclClass {
			continue
		}
		if c := d.Class.findClass(name); c != nil {
			return c
		}
	}
	return nil
}

func (c *Class) findClass(name string) *Class {
	if c.Name == name {
		return c
	}
	if c.Body == nil {
		return nil
	}
	for i := range c.Body.Classes {
		if found := c.Body.Classes[i].findClass(name); found != nil {
			return found
		}
	}
	return nil
}
