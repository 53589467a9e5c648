// Package ast is the typed overlay over the green/red syntax tree: each
// wrapper is a thin, zero-allocation-beyond-the-struct view over a
// *green.SyntaxNode, exposing typed child accessors instead of making
// callers walk raw Kind()/ChildrenOfKind() calls everywhere. It covers
// every statement-level node kind and the constraint/action subtrees the
// linter rules inspect; expression interiors (default values, CHECK
// predicates, USING expressions) are exposed as raw Node/Text rather than a
// full expression-kind hierarchy, since no rule needs to evaluate them —
// only to notice they exist or read their source text.
//
// Grounded on the teacher's sqlparser/sqldocument package, which overlays a
// typed Statement/Expr hierarchy atop sqlparser/pgsql's raw parse nodes;
// the cast()-from-SyntaxNode pattern here plays the same role the
// teacher's type-switching constructors play there.
package ast

import (
	"strings"

	"github.com/pgsentry/pgsentry/internal/green"
	"github.com/pgsentry/pgsentry/syntax"
)

// Node is the base wrapper every typed node embeds.
type Node struct {
	syn *green.SyntaxNode
}

func wrap(sn *green.SyntaxNode) Node { return Node{syn: sn} }

// Syntax returns the underlying red-tree node for untyped access.
func (n Node) Syntax() *green.SyntaxNode { return n.syn }

// Kind returns the node's syntax kind.
func (n Node) Kind() syntax.Kind { return n.syn.Kind() }

// Text returns the node's full verbatim source text.
func (n Node) Text() string { return n.syn.Text() }

// TextRange returns the node's absolute [start, end) byte range.
func (n Node) TextRange() (int, int) { return n.syn.TextRange() }

// Token reports whether a direct child token of kind k exists and, if so,
// returns its text.
func (n Node) Token(k syntax.Kind) (string, bool) {
	t := n.syn.Token(k)
	if t == nil {
		return "", false
	}
	return t.Text(), true
}

// HasToken reports whether a direct child token of kind k exists — used
// for fixed presence-only markers like CONCURRENTLY or IF EXISTS.
func (n Node) HasToken(k syntax.Kind) bool { return n.syn.Token(k) != nil }

// Name returns the node's first NAME_REF child's text, case-folded to
// lowercase for unquoted identifiers (PostgreSQL folds unquoted
// identifiers to lowercase; a QUOTED_IDENT keeps its case as written).
func Name(n *green.SyntaxNode) string {
	ref := n.FirstChildOfKind(syntax.NAME_REF)
	if ref == nil {
		return ""
	}
	return identText(ref)
}

func identText(n *green.SyntaxNode) string {
	for _, c := range n.Children() {
		if c.Token == nil {
			continue
		}
		switch c.Token.Kind() {
		case syntax.QUOTED_IDENT:
			t := c.Token.Text()
			return strings.Trim(t, `"`)
		case syntax.IDENT:
			return strings.ToLower(c.Token.Text())
		}
	}
	return strings.ToLower(n.Text())
}

// QualifiedName returns the dotted name spelled out by a sequence of
// NAME_REF children (schema.table, or just table), lowercase-folded
// per-segment the way Name folds a single identifier.
func QualifiedName(n *green.SyntaxNode) string {
	var parts []string
	for _, c := range n.Children() {
		if c.Node != nil && c.Node.Kind() == syntax.NAME_REF {
			parts = append(parts, identText(c.Node))
		}
	}
	return strings.Join(parts, ".")
}

// SourceFile is the root of a parsed file: a flat list of statements.
type SourceFile struct{ Node }

// NewSourceFile wraps a SOURCE_FILE red node.
func NewSourceFile(sn *green.SyntaxNode) *SourceFile { return &SourceFile{wrap(sn)} }

// Statements returns every direct statement-level child node, in source
// order (GENERIC_STMT included, for the tier-2 rules that match on raw
// text).
func (f *SourceFile) Statements() []Node {
	var out []Node
	for _, c := range f.syn.ChildNodes() {
		out = append(out, wrap(c))
	}
	return out
}

// Descendants returns every node in the subtree rooted at n, preorder,
// including n itself — the traversal most rules use to find every
// occurrence of a kind regardless of nesting depth (e.g. every
// ADD_CONSTRAINT_ACTION inside every ALTER_TABLE_STMT).
func Descendants(n *green.SyntaxNode) []*green.SyntaxNode {
	out := []*green.SyntaxNode{n}
	for _, c := range n.ChildNodes() {
		out = append(out, Descendants(c)...)
	}
	return out
}

// FindAll returns every descendant of n (inclusive) with kind k.
func FindAll(n *green.SyntaxNode, k syntax.Kind) []*green.SyntaxNode {
	var out []*green.SyntaxNode
	for _, d := range Descendants(n) {
		if d.Kind() == k {
			out = append(out, d)
		}
	}
	return out
}

// --- CREATE TABLE ---------------------------------------------------------

type CreateTableStmt struct{ Node }

func NewCreateTableStmt(sn *green.SyntaxNode) *CreateTableStmt { return &CreateTableStmt{wrap(sn)} }

func (s *CreateTableStmt) TableName() string { return QualifiedName(s.syn) }
func (s *CreateTableStmt) IfNotExists() bool { return s.HasToken(syntax.IF_KW) }

func (s *CreateTableStmt) Columns() []*ColumnDef {
	list := s.syn.FirstChildOfKind(syntax.TABLE_ELEMENT_LIST)
	if list == nil {
		return nil
	}
	var out []*ColumnDef
	for _, c := range list.ChildrenOfKind(syntax.COLUMN_DEF) {
		out = append(out, NewColumnDef(c))
	}
	return out
}

func (s *CreateTableStmt) TableConstraints() []*TableConstraint {
	list := s.syn.FirstChildOfKind(syntax.TABLE_ELEMENT_LIST)
	if list == nil {
		return nil
	}
	var out []*TableConstraint
	for _, kind := range tableConstraintKinds {
		for _, c := range list.ChildrenOfKind(kind) {
			out = append(out, NewTableConstraint(c))
		}
	}
	return out
}

var tableConstraintKinds = []syntax.Kind{
	syntax.CHECK_CONSTRAINT, syntax.UNIQUE_CONSTRAINT, syntax.PRIMARY_KEY_CONSTRAINT,
	syntax.FOREIGN_KEY_CONSTRAINT, syntax.TABLE_CONSTRAINT,
}

// ColumnDef wraps a COLUMN_DEF node: a column name, a type name, and an
// ordered list of column constraints.
type ColumnDef struct{ Node }

func NewColumnDef(sn *green.SyntaxNode) *ColumnDef { return &ColumnDef{wrap(sn)} }

func (c *ColumnDef) Name() string { return Name(c.syn) }

func (c *ColumnDef) TypeName() string {
	tn := c.syn.FirstChildOfKind(syntax.TYPE_NAME)
	if tn == nil {
		return ""
	}
	return tn.Text()
}

func (c *ColumnDef) Constraints() []*ColumnConstraint {
	var out []*ColumnConstraint
	for _, kind := range columnConstraintKinds {
		for _, n := range c.syn.ChildrenOfKind(kind) {
			out = append(out, NewColumnConstraint(n))
		}
	}
	return out
}

var columnConstraintKinds = []syntax.Kind{
	syntax.NOT_NULL_CONSTRAINT, syntax.NULL_CONSTRAINT, syntax.DEFAULT_CONSTRAINT,
	syntax.GENERATED_CONSTRAINT, syntax.CHECK_CONSTRAINT, syntax.UNIQUE_CONSTRAINT,
	syntax.PRIMARY_KEY_CONSTRAINT, syntax.FOREIGN_KEY_CONSTRAINT,
}

func (c *ColumnDef) HasConstraint(k syntax.Kind) bool {
	return c.syn.FirstChildOfKind(k) != nil
}

// ColumnConstraint wraps any one of the COLUMN_DEF's per-column constraint
// kinds; Kind() discriminates which one.
type ColumnConstraint struct{ Node }

func NewColumnConstraint(sn *green.SyntaxNode) *ColumnConstraint { return &ColumnConstraint{wrap(sn)} }

// TableConstraint wraps a table-level constraint (CHECK/UNIQUE/PRIMARY
// KEY/FOREIGN KEY/EXCLUDE); Kind() discriminates which one.
type TableConstraint struct{ Node }

func NewTableConstraint(sn *green.SyntaxNode) *TableConstraint { return &TableConstraint{wrap(sn)} }

// Name returns the constraint's explicit CONSTRAINT name, or "" if
// unnamed.
func (t *TableConstraint) Name() string { return Name(t.syn) }

func (t *TableConstraint) Columns() []string {
	list := t.syn.FirstChildOfKind(syntax.COLUMN_LIST)
	if list == nil {
		return nil
	}
	var out []string
	for _, ref := range list.ChildrenOfKind(syntax.NAME_REF) {
		out = append(out, identText(ref))
	}
	return out
}

// --- ALTER TABLE -----------------------------------------------------------

type AlterTableStmt struct{ Node }

func NewAlterTableStmt(sn *green.SyntaxNode) *AlterTableStmt { return &AlterTableStmt{wrap(sn)} }

func (s *AlterTableStmt) TableName() string { return QualifiedName(s.syn) }
func (s *AlterTableStmt) IfExists() bool    { return s.HasToken(syntax.IF_KW) }

var alterTableActionKinds = []syntax.Kind{
	syntax.ADD_COLUMN_ACTION, syntax.DROP_COLUMN_ACTION, syntax.ALTER_COLUMN_ACTION,
	syntax.ADD_CONSTRAINT_ACTION, syntax.DROP_CONSTRAINT_ACTION, syntax.VALIDATE_CONSTRAINT_ACTION,
	syntax.RENAME_TABLE_ACTION, syntax.RENAME_COLUMN_ACTION, syntax.RENAME_CONSTRAINT_ACTION,
	syntax.SET_SCHEMA_ACTION, syntax.GENERIC_BODY,
}

// Actions returns every action clause in the statement, in source order.
func (s *AlterTableStmt) Actions() []Node {
	var out []Node
	for _, c := range s.syn.ChildNodes() {
		for _, k := range alterTableActionKinds {
			if c.Kind() == k {
				out = append(out, wrap(c))
				break
			}
		}
	}
	return out
}

type AddColumnAction struct{ Node }

func NewAddColumnAction(sn *green.SyntaxNode) *AddColumnAction { return &AddColumnAction{wrap(sn)} }

func (a *AddColumnAction) Column() *ColumnDef {
	cd := a.syn.FirstChildOfKind(syntax.COLUMN_DEF)
	if cd == nil {
		return nil
	}
	return NewColumnDef(cd)
}

func (a *AddColumnAction) IfNotExists() bool { return a.HasToken(syntax.IF_KW) }

type DropColumnAction struct{ Node }

func NewDropColumnAction(sn *green.SyntaxNode) *DropColumnAction { return &DropColumnAction{wrap(sn)} }
func (a *DropColumnAction) Column() string                       { return Name(a.syn) }
func (a *DropColumnAction) IfExists() bool                       { return a.HasToken(syntax.IF_KW) }

type AlterColumnAction struct{ Node }

func NewAlterColumnAction(sn *green.SyntaxNode) *AlterColumnAction {
	return &AlterColumnAction{wrap(sn)}
}
func (a *AlterColumnAction) Column() string { return Name(a.syn) }

var alterColumnOptionKinds = []syntax.Kind{
	syntax.ALTER_COLUMN_TYPE_OPTION, syntax.ALTER_COLUMN_SET_NOT_NULL_OPTION,
	syntax.ALTER_COLUMN_DROP_NOT_NULL_OPTION, syntax.ALTER_COLUMN_SET_DEFAULT_OPTION,
	syntax.ALTER_COLUMN_DROP_DEFAULT_OPTION, syntax.GENERIC_BODY,
}

// Option returns the single option sub-node (TYPE/SET NOT NULL/DROP NOT
// NULL/SET DEFAULT/DROP DEFAULT) this ALTER COLUMN action carries.
func (a *AlterColumnAction) Option() Node {
	for _, k := range alterColumnOptionKinds {
		if c := a.syn.FirstChildOfKind(k); c != nil {
			return wrap(c)
		}
	}
	return Node{}
}

type AddConstraintAction struct{ Node }

func NewAddConstraintAction(sn *green.SyntaxNode) *AddConstraintAction {
	return &AddConstraintAction{wrap(sn)}
}

// NotValid reports whether this ADD CONSTRAINT carries NOT VALID. For a
// FOREIGN KEY constraint the suffix is consumed at this action's own
// level; for a CHECK constraint it is consumed inside the CHECK_CONSTRAINT
// subtree itself (tableConstraint's CHECK branch eats its own optional
// NOT VALID), so both levels are checked.
func (a *AddConstraintAction) NotValid() bool {
	if a.HasToken(syntax.VALID_KW) && a.HasToken(syntax.NOT_KW) {
		return true
	}
	if c := a.Constraint(); c != nil {
		return c.HasToken(syntax.VALID_KW) && c.HasToken(syntax.NOT_KW)
	}
	return false
}

func (a *AddConstraintAction) Constraint() *TableConstraint {
	for _, k := range tableConstraintKinds {
		if c := a.syn.FirstChildOfKind(k); c != nil {
			return NewTableConstraint(c)
		}
	}
	return nil
}

type DropConstraintAction struct{ Node }

func NewDropConstraintAction(sn *green.SyntaxNode) *DropConstraintAction {
	return &DropConstraintAction{wrap(sn)}
}
func (a *DropConstraintAction) Name() string { return Name(a.syn) }
func (a *DropConstraintAction) IfExists() bool { return a.HasToken(syntax.IF_KW) }

type ValidateConstraintAction struct{ Node }

func NewValidateConstraintAction(sn *green.SyntaxNode) *ValidateConstraintAction {
	return &ValidateConstraintAction{wrap(sn)}
}
func (a *ValidateConstraintAction) Name() string { return Name(a.syn) }

type RenameColumnAction struct{ Node }

func NewRenameColumnAction(sn *green.SyntaxNode) *RenameColumnAction {
	return &RenameColumnAction{wrap(sn)}
}

type RenameTableAction struct{ Node }

func NewRenameTableAction(sn *green.SyntaxNode) *RenameTableAction {
	return &RenameTableAction{wrap(sn)}
}

// --- CREATE/DROP INDEX -----------------------------------------------------

type CreateIndexStmt struct{ Node }

func NewCreateIndexStmt(sn *green.SyntaxNode) *CreateIndexStmt { return &CreateIndexStmt{wrap(sn)} }

func (s *CreateIndexStmt) Concurrently() bool  { return s.HasToken(syntax.CONCURRENTLY_KW) }
func (s *CreateIndexStmt) IfNotExists() bool   { return s.HasToken(syntax.IF_KW) }

// nameRefsSplitByToken partitions a node's direct NAME_REF children into
// those appearing before the first direct child token of kind sep and
// those appearing at or after it. createIndexStmt parses an optional index
// name followed by ON then a (possibly qualified) table name as flat
// NAME_REF siblings with no wrapping node of their own, so this is how
// Name/TableName tell the two apart.
func nameRefsSplitByToken(n *green.SyntaxNode, sep syntax.Kind) (before, after []*green.SyntaxNode) {
	seenSep := false
	for _, c := range n.Children() {
		if c.Token != nil && c.Token.Kind() == sep {
			seenSep = true
			continue
		}
		if c.Node == nil || c.Node.Kind() != syntax.NAME_REF {
			continue
		}
		if seenSep {
			after = append(after, c.Node)
		} else {
			before = append(before, c.Node)
		}
	}
	return before, after
}

// Name returns the index's own name, or "" for an unnamed
// CREATE INDEX ... ON form.
func (s *CreateIndexStmt) Name() string {
	before, _ := nameRefsSplitByToken(s.syn, syntax.ON_KW)
	if len(before) == 0 {
		return ""
	}
	return identText(before[0])
}

func (s *CreateIndexStmt) TableName() string {
	_, after := nameRefsSplitByToken(s.syn, syntax.ON_KW)
	var parts []string
	for _, r := range after {
		parts = append(parts, identText(r))
	}
	return strings.Join(parts, ".")
}

type DropIndexStmt struct{ Node }

func NewDropIndexStmt(sn *green.SyntaxNode) *DropIndexStmt { return &DropIndexStmt{wrap(sn)} }
func (s *DropIndexStmt) Concurrently() bool                { return s.HasToken(syntax.CONCURRENTLY_KW) }
func (s *DropIndexStmt) IfExists() bool                     { return s.HasToken(syntax.IF_KW) }

// --- DROP TABLE --------------------------------------------------------------

type DropTableStmt struct{ Node }

func NewDropTableStmt(sn *green.SyntaxNode) *DropTableStmt { return &DropTableStmt{wrap(sn)} }
func (s *DropTableStmt) IfExists() bool                    { return s.HasToken(syntax.IF_KW) }
func (s *DropTableStmt) Cascade() bool                     { return s.HasToken(syntax.CASCADE_KW) }

// --- CREATE/ALTER DOMAIN -----------------------------------------------------

type CreateDomainStmt struct{ Node }

func NewCreateDomainStmt(sn *green.SyntaxNode) *CreateDomainStmt { return &CreateDomainStmt{wrap(sn)} }

func (s *CreateDomainStmt) HasCheckConstraint() bool {
	return s.syn.FirstChildOfKind(syntax.CHECK_CONSTRAINT) != nil
}

type AlterDomainStmt struct{ Node }

func NewAlterDomainStmt(sn *green.SyntaxNode) *AlterDomainStmt { return &AlterDomainStmt{wrap(sn)} }

func (s *AlterDomainStmt) AddsConstraint() bool {
	return s.syn.FirstChildOfKind(syntax.ADD_CONSTRAINT_ACTION) != nil
}

// --- Transaction control -----------------------------------------------------

type BeginStmt struct{ Node }

func NewBeginStmt(sn *green.SyntaxNode) *BeginStmt { return &BeginStmt{wrap(sn)} }

type CommitStmt struct{ Node }

func NewCommitStmt(sn *green.SyntaxNode) *CommitStmt { return &CommitStmt{wrap(sn)} }

type RollbackStmt struct{ Node }

func NewRollbackStmt(sn *green.SyntaxNode) *RollbackStmt { return &RollbackStmt{wrap(sn)} }

// --- SET/RESET/SHOW -----------------------------------------------------------

// SetStmt wraps SET_STMT. Setting and Value read the raw text because
// setStmt's grammar preserves the value list losslessly without typing
// each GUC's value grammar.
type SetStmt struct{ Node }

func NewSetStmt(sn *green.SyntaxNode) *SetStmt { return &SetStmt{wrap(sn)} }

func (s *SetStmt) Setting() string {
	ref := s.syn.FirstChildOfKind(syntax.NAME_REF)
	if ref == nil {
		return ""
	}
	return identText(ref)
}

// --- Generic (tier-2) statements ---------------------------------------------

// GenericStmt wraps GENERIC_STMT: a statement recognized only by its
// leading keyword(s), body preserved losslessly but not decomposed.
type GenericStmt struct{ Node }

func NewGenericStmt(sn *green.SyntaxNode) *GenericStmt { return &GenericStmt{wrap(sn)} }

// LeadingKeywords returns the statement's first n keyword tokens'
// canonical (uppercased) spelling, joined by a single space — e.g. "DROP
// DATABASE" — for the tier-2 rules that match on the statement shape
// without a dedicated node kind. genericStatement nests every token one
// level down inside a GENERIC_BODY child, so that is where this looks.
func (s *GenericStmt) LeadingKeywords(n int) string {
	body := s.syn
	if b := s.syn.FirstChildOfKind(syntax.GENERIC_BODY); b != nil {
		body = b
	}
	var words []string
	for _, c := range body.Children() {
		if c.Token == nil {
			break
		}
		if !c.Token.Kind().IsKeyword() {
			continue
		}
		words = append(words, strings.ToUpper(c.Token.Text()))
		if len(words) == n {
			break
		}
	}
	return strings.Join(words, " ")
}
