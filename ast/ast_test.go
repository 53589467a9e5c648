package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/parse"
	"github.com/pgsentry/pgsentry/syntax"
)

func stmt(t *testing.T, input string, kind syntax.Kind) ast.Node {
	t.Helper()
	p := parse.Text(input)
	stmts := p.Tree().Statements()
	require.Len(t, stmts, 1, "input %q", input)
	require.Equal(t, kind, stmts[0].Kind())
	return stmts[0]
}

func TestCreateTableStmt(t *testing.T) {
	s := stmt(t, `CREATE TABLE IF NOT EXISTS app.users (
  id bigserial PRIMARY KEY,
  email text NOT NULL,
  age int DEFAULT 0,
  CONSTRAINT age_pos CHECK (age >= 0)
);`, syntax.CREATE_TABLE_STMT)
	ct := ast.NewCreateTableStmt(s.Syntax())

	assert.Equal(t, "app.users", ct.TableName())
	assert.True(t, ct.IfNotExists())

	cols := ct.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, "id", cols[0].Name())
	assert.Equal(t, "bigserial", cols[0].TypeName())
	assert.True(t, cols[0].HasConstraint(syntax.PRIMARY_KEY_CONSTRAINT))
	assert.Equal(t, "email", cols[1].Name())
	assert.True(t, cols[1].HasConstraint(syntax.NOT_NULL_CONSTRAINT))
	assert.Equal(t, "age", cols[2].Name())
	assert.True(t, cols[2].HasConstraint(syntax.DEFAULT_CONSTRAINT))

	tcs := ct.TableConstraints()
	require.Len(t, tcs, 1)
	assert.Equal(t, syntax.CHECK_CONSTRAINT, tcs[0].Kind())
	assert.Equal(t, "age_pos", tcs[0].Name())
}

func TestQuotedIdentifierCasePreserved(t *testing.T) {
	s := stmt(t, `CREATE TABLE "MixedCase" (a int);`, syntax.CREATE_TABLE_STMT)
	assert.Equal(t, "MixedCase", ast.NewCreateTableStmt(s.Syntax()).TableName())

	s = stmt(t, `CREATE TABLE MixedCase (a int);`, syntax.CREATE_TABLE_STMT)
	assert.Equal(t, "mixedcase", ast.NewCreateTableStmt(s.Syntax()).TableName(),
		"unquoted identifiers fold to lowercase")
}

func TestAlterTableActions(t *testing.T) {
	s := stmt(t, `ALTER TABLE t
  ADD COLUMN IF NOT EXISTS a int,
  DROP COLUMN IF EXISTS b,
  ALTER COLUMN c SET NOT NULL,
  ADD CONSTRAINT ck CHECK (a > 0) NOT VALID,
  DROP CONSTRAINT old_ck,
  VALIDATE CONSTRAINT ck;`, syntax.ALTER_TABLE_STMT)
	at := ast.NewAlterTableStmt(s.Syntax())
	assert.Equal(t, "t", at.TableName())

	actions := at.Actions()
	require.Len(t, actions, 6)
	assert.Equal(t, syntax.ADD_COLUMN_ACTION, actions[0].Kind())
	assert.Equal(t, syntax.DROP_COLUMN_ACTION, actions[1].Kind())
	assert.Equal(t, syntax.ALTER_COLUMN_ACTION, actions[2].Kind())
	assert.Equal(t, syntax.ADD_CONSTRAINT_ACTION, actions[3].Kind())
	assert.Equal(t, syntax.DROP_CONSTRAINT_ACTION, actions[4].Kind())
	assert.Equal(t, syntax.VALIDATE_CONSTRAINT_ACTION, actions[5].Kind())

	add := ast.NewAddColumnAction(actions[0].Syntax())
	assert.True(t, add.IfNotExists())
	require.NotNil(t, add.Column())
	assert.Equal(t, "a", add.Column().Name())

	drop := ast.NewDropColumnAction(actions[1].Syntax())
	assert.True(t, drop.IfExists())
	assert.Equal(t, "b", drop.Column())

	alter := ast.NewAlterColumnAction(actions[2].Syntax())
	assert.Equal(t, "c", alter.Column())
	assert.Equal(t, syntax.ALTER_COLUMN_SET_NOT_NULL_OPTION, alter.Option().Kind())

	addC := ast.NewAddConstraintAction(actions[3].Syntax())
	require.NotNil(t, addC.Constraint())
	assert.Equal(t, syntax.CHECK_CONSTRAINT, addC.Constraint().Kind())
	assert.Equal(t, "ck", addC.Constraint().Name())
	assert.True(t, addC.NotValid())

	dropC := ast.NewDropConstraintAction(actions[4].Syntax())
	assert.Equal(t, "old_ck", dropC.Name())

	val := ast.NewValidateConstraintAction(actions[5].Syntax())
	assert.Equal(t, "ck", val.Name())
}

func TestAddForeignKeyNotValidAtActionLevel(t *testing.T) {
	s := stmt(t, `ALTER TABLE t ADD CONSTRAINT fk FOREIGN KEY (uid) REFERENCES u (id) NOT VALID;`,
		syntax.ALTER_TABLE_STMT)
	actions := ast.NewAlterTableStmt(s.Syntax()).Actions()
	require.Len(t, actions, 1)
	add := ast.NewAddConstraintAction(actions[0].Syntax())
	require.NotNil(t, add.Constraint())
	assert.Equal(t, syntax.FOREIGN_KEY_CONSTRAINT, add.Constraint().Kind())
	assert.True(t, add.NotValid())
}

func TestCreateIndexStmt(t *testing.T) {
	s := stmt(t, `CREATE INDEX CONCURRENTLY "ix" ON s."t" (c);`, syntax.CREATE_INDEX_STMT)
	ci := ast.NewCreateIndexStmt(s.Syntax())
	assert.True(t, ci.Concurrently())
	assert.False(t, ci.IfNotExists())
	assert.Equal(t, "ix", ci.Name())
	assert.Equal(t, "s.t", ci.TableName())
}

func TestCreateIndexStmt_Unnamed(t *testing.T) {
	s := stmt(t, `CREATE INDEX ON t (c);`, syntax.CREATE_INDEX_STMT)
	ci := ast.NewCreateIndexStmt(s.Syntax())
	assert.False(t, ci.Concurrently())
	assert.Equal(t, "", ci.Name())
	assert.Equal(t, "t", ci.TableName())
}

func TestDropStmts(t *testing.T) {
	s := stmt(t, `DROP INDEX CONCURRENTLY IF EXISTS ix;`, syntax.DROP_INDEX_STMT)
	di := ast.NewDropIndexStmt(s.Syntax())
	assert.True(t, di.Concurrently())
	assert.True(t, di.IfExists())

	s = stmt(t, `DROP TABLE IF EXISTS t CASCADE;`, syntax.DROP_TABLE_STMT)
	dt := ast.NewDropTableStmt(s.Syntax())
	assert.True(t, dt.IfExists())
	assert.True(t, dt.Cascade())
}

func TestSetStmt(t *testing.T) {
	s := stmt(t, `SET lock_timeout = '1s';`, syntax.SET_STMT)
	assert.Equal(t, "lock_timeout", ast.NewSetStmt(s.Syntax()).Setting())

	s = stmt(t, `SET LOCAL Statement_Timeout TO '5s';`, syntax.SET_STMT)
	assert.Equal(t, "statement_timeout", ast.NewSetStmt(s.Syntax()).Setting())
}

func TestGenericStmtLeadingKeywords(t *testing.T) {
	s := stmt(t, `DROP DATABASE prod;`, syntax.GENERIC_STMT)
	g := ast.NewGenericStmt(s.Syntax())
	assert.Equal(t, "DROP DATABASE", g.LeadingKeywords(2))

	s = stmt(t, `create sequence seq increment 2;`, syntax.GENERIC_STMT)
	g = ast.NewGenericStmt(s.Syntax())
	assert.Equal(t, "CREATE SEQUENCE", g.LeadingKeywords(2))
}

func TestTextRangesNestAndCoverStatement(t *testing.T) {
	input := `ALTER TABLE t ADD COLUMN c integer;`
	s := stmt(t, input, syntax.ALTER_TABLE_STMT)
	start, end := s.TextRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, len(input)-1, end) // trailing semicolon sits outside the statement node

	for _, n := range ast.Descendants(s.Syntax()) {
		ds, de := n.TextRange()
		assert.GreaterOrEqual(t, ds, start)
		assert.LessOrEqual(t, de, end)
	}
}

func TestFindAll(t *testing.T) {
	p := parse.Text(`CREATE TABLE a (x int); CREATE TABLE b (y int, z int);`)
	defs := ast.FindAll(p.SyntaxNode(), syntax.COLUMN_DEF)
	assert.Len(t, defs, 3)
}
