package kotlin

import (
	"fmt"
	"strings"
)

func (t *Type) String() string {
	switch t.Kind {
	case TypeNullable:
		return t.Name
	case TypeFunction:
		parameters := make([]string, 0, len(t.Parameters))
		for _, p := range t.Parameters {
			parameters = append(parameters, p.String())
		}
		ret := ""
		if t.ReturnType != nil {
			ret = t.ReturnType.String()
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(parameters, ", "), ret)
	default:
		return t.Name
	}
}

func (p *FunctionTypeParameter) String() string {
	if p.Name == "" {
		return p.Type.String()
	}
	return fmt.Sprintf("%s: %s", p.Name, p.Type.String())
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Type.String())
}

func modifierText(modifiers []Modifier) string {
	if len(modifiers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, " ") + " "
}

// Signature renders the declaration header the way it reads in source:
// modifiers, fun keyword, name, parameter list and return type.
func (f *Function) Signature() string {
	var b strings.Builder
	b.WriteString(modifierText(f.Modifiers))
	b.WriteString("fun ")
	if f.Receiver != nil {
		b.WriteString(f.Receiver.String())
		b.WriteString(".")
	}
	b.WriteString(f.Name)
	b.WriteString("(")
	for i := range f.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Parameters[i].String())
	}
	b.WriteString(")")
	if f.ReturnType != nil {
		b.WriteString(": ")
		b.WriteString(f.ReturnType.String())
	}
	return b.String()
}

// Signature renders "modifiers val|var name: type", falling back to
// "name = initializer" when the type is inferred.
func (p *Property) Signature() string {
	if t := p.DeclaredType(); t != nil {
		return fmt.Sprintf("%s%s %s: %s", modifierText(p.Modifiers), p.Mutability, p.Name(), t.String())
	}
	if p.Initializer != nil {
		return fmt.Sprintf("%s = %s", p.Name(), p.Initializer.String())
	}
	if p.Delegate != nil {
		return fmt.Sprintf("%s%s %s by %s", modifierText(p.Modifiers), p.Mutability, p.Name(), p.Delegate.String())
	}
	return fmt.Sprintf("%s%s %s", modifierText(p.Modifiers), p.Mutability, p.Name())
}

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralObject:
		return "object { ... }"
	case LiteralLambda:
		return "{ ... }"
	default:
		return l.Text
	}
}

// String renders an expression close to its source form; used for hover
// output of inferred declarations, not for round-tripping.
func (e *Expression) String() string {
	switch e.Kind {
	case ExprIdentifier:
		return e.Identifier
	case ExprLiteral:
		return e.Literal.String()
	case ExprCall:
		return e.Inner.String() + e.Call.String()
	case ExprNavigation:
		return e.Inner.String() + "." + e.Navigation.Identifier
	case ExprIndexing:
		indexes := make([]string, 0, len(e.Index))
		for i := range e.Index {
			indexes = append(indexes, e.Index[i].String())
		}
		return fmt.Sprintf("%s[%s]", e.Inner.String(), strings.Join(indexes, ", "))
	case ExprEquality, ExprComparison, ExprMultiplicative, ExprAdditive:
		return fmt.Sprintf("%s %s %s", e.Left.String(), e.Operator, e.Right.String())
	case ExprDisjunction:
		return fmt.Sprintf("%s || %s", e.Left.String(), e.Right.String())
	case ExprConjunction:
		return fmt.Sprintf("%s && %s", e.Left.String(), e.Right.String())
	case ExprElvis:
		return fmt.Sprintf("%s ?: %s", e.Left.String(), e.Right.String())
	case ExprRange:
		return fmt.Sprintf("%s..%s", e.Left.String(), e.Right.String())
	case ExprInfix:
		return fmt.Sprintf("%s %s %s", e.Left.String(), e.Operator, e.Right.String())
	case ExprAs:
		return fmt.Sprintf("%s as %s", e.Left.String(), e.Right.String())
	case ExprCheckIn:
		return fmt.Sprintf("%s in %s", e.Left.String(), e.Right.String())
	case ExprCheckNotIn:
		return fmt.Sprintf("%s !in %s", e.Left.String(), e.Right.String())
	case ExprCheckIs:
		return fmt.Sprintf("%s is %s", e.Left.String(), e.Type.String())
	case ExprCheckNotIs:
		return fmt.Sprintf("%s !is %s", e.Left.String(), e.Type.String())
	case ExprPrefix:
		return e.Operator + e.Inner.String()
	case ExprPostfix:
		return e.Inner.String() + e.Operator
	case ExprParenthesized:
		return "(" + e.Inner.String() + ")"
	case ExprThis:
		if e.Identifier != "" {
			return "this@" + e.Identifier
		}
		return "this"
	case ExprSuper:
		return "super"
	case ExprCallableReference:
		return e.Qualifier + "::" + e.Identifier
	case ExprType:
		return e.Type.String()
	case ExprThrow:
		return "throw " + e.Inner.String()
	case ExprReturn:
		if e.Inner != nil {
			return "return " + e.Inner.String()
		}
		return "return"
	case ExprBreak:
		return "break"
	case ExprContinue:
		return "continue"
	case ExprDirectlyAssignable:
		return e.Inner.String()
	case ExprIf:
		return "if (" + e.If.Condition.String() + ") ..."
	case ExprWhen:
		return "when { ... }"
	case ExprTry:
		return "try { ... }"
	default:
		return ""
	}
}

func (s *CallSuffix) String() string {
	var b strings.Builder
	if len(s.TypeArguments) > 0 {
		types := make([]string, 0, len(s.TypeArguments))
		for i := range s.TypeArguments {
			types = append(types, s.TypeArguments[i].String())
		}
		b.WriteString("<")
		b.WriteString(strings.Join(types, ", "))
		b.WriteString(">")
	}
	b.WriteString("(")
	for i := range s.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.Arguments[i].String())
	}
	b.WriteString(")")
	if s.Lambda != nil {
		b.WriteString(" { ... }")
	}
	return b.String()
}

func (a *ValueArgument) String() string {
	if a.Name != "" {
		return fmt.Sprintf("%s = %s", a.Name, a.Expression.String())
	}
	return a.Expression.String()
}
