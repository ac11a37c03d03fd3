package types

import "strconv"

// String renders t in a compact, stable textual form used by error
// messages and by the AST textual-form printer's type="..." attribute.
func String(t Type) string {
	switch t := t.(type) {
	case *Primitive:
		return t.Name
	case *Function:
		return "(" + String(t.Parameter) + ") -> " + String(t.Result)
	case *Optional:
		return wrapIfFunction(t.Wrapped) + "?"
	case *TypeVariable:
		return "$T" + strconv.Itoa(t.ID)
	case TopAny:
		return "Any"
	default:
		return "<invalid type>"
	}
}

func wrapIfFunction(t Type) string {
	if _, ok := t.(*Function); ok {
		return "(" + String(t) + ")"
	}
	return String(t)
}
