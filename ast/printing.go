package ast

import (
	"strconv"
	"strings"

	"github.com/kit-lang/typecheck/types"
)

// String renders n in the module's textual form: "(<NodeKind> attrs...)".
// Attribute order is stable per kind, making string equality a usable test
// oracle for checker output.
func String(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *VariableDecl:
		sb.WriteString("(VariableDecl name=")
		sb.WriteString(n.Name)
		writeTypeAttr(sb, n.declaredType)
		if n.Initializer != nil {
			sb.WriteString(" initializer=")
			writeNode(sb, n.Initializer)
		}
		sb.WriteByte(')')

	case *FunctionDecl:
		sb.WriteString("(FunctionDecl name=")
		sb.WriteString(n.Name)
		writeTypeAttr(sb, n.InterfaceTy)
		sb.WriteByte(')')

	case *IntegerLiteral:
		sb.WriteString("(IntegerLiteral value=")
		sb.WriteString(strconv.FormatInt(n.Value, 10))
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *DeclRef:
		sb.WriteString("(DeclRef target=")
		sb.WriteString(declName(n.Target))
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *OverloadedDeclRef:
		sb.WriteString("(OverloadedDeclRef targets=[")
		for i, t := range n.Targets {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(declName(t))
		}
		sb.WriteByte(']')
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *UnresolvedDeclRef:
		sb.WriteString("(UnresolvedDeclRef name=")
		sb.WriteString(n.Name)
		sb.WriteByte(')')

	case *Call:
		sb.WriteString("(Call callee=")
		writeNode(sb, n.Callee)
		sb.WriteString(" argument=")
		writeNode(sb, n.Argument)
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *Closure:
		sb.WriteString("(Closure parameter=")
		sb.WriteString(n.Parameter.Name)
		sb.WriteString(" body=[")
		for i, stmt := range n.Body {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, stmt)
		}
		sb.WriteByte(']')
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *InjectIntoOptional:
		sb.WriteString("(InjectIntoOptional sub=")
		writeNode(sb, n.Sub)
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *BindOptional:
		sb.WriteString("(BindOptional sub=")
		writeNode(sb, n.Sub)
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *OptionalEvaluation:
		sb.WriteString("(OptionalEvaluation sub=")
		writeNode(sb, n.Sub)
		writeTypeAttr(sb, n.inferred)
		sb.WriteByte(')')

	case *SourceFile:
		sb.WriteString("(SourceFile statements=[")
		for i, stmt := range n.Statements {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, stmt)
		}
		sb.WriteString("])")

	default:
		panic("ast.String: unknown node kind " + n.NodeKind())
	}
}

func writeTypeAttr(sb *strings.Builder, t types.Type) {
	sb.WriteString(" type=")
	if t == nil {
		sb.WriteString(`""`)
		return
	}
	sb.WriteByte('"')
	sb.WriteString(types.String(t))
	sb.WriteByte('"')
}

func declName(d ValueDecl) string {
	switch d := d.(type) {
	case *VariableDecl:
		return d.Name
	case *FunctionDecl:
		return d.Name
	default:
		return "?"
	}
}
