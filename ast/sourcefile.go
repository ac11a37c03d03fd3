package ast

// SourceFile owns an ordered list of top-level statements: each is either
// a ValueDecl or an Expr. SourceFile itself is a driver artifact — it must
// never appear inside constraint generation or solution application.
type SourceFile struct {
	Statements []Node
}

func (f *SourceFile) NodeKind() string { return "SourceFile" }
