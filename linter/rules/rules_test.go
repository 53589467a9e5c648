package rules

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/parse"
)

func lintWith(sql string, settings linter.Settings, rules ...linter.Rule) []linter.Violation {
	var l *linter.Linter
	if len(rules) == 0 {
		l = linter.WithAllRules()
	} else {
		l = linter.From(rules)
	}
	l.SetSettings(settings)
	return l.Lint(parse.Text(sql), sql)
}

func lintAll(sql string) []linter.Violation {
	return lintWith(sql, linter.DefaultSettings())
}

func codes(violations []linter.Violation) []linter.Rule {
	out := make([]linter.Rule, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func countCode(violations []linter.Violation, code linter.Rule) int {
	n := 0
	for _, v := range violations {
		if v.Code == code {
			n++
		}
	}
	return n
}

// applyFixes applies every fix attached to violations with the given code,
// rightmost edit first so earlier offsets stay valid.
func applyFixes(text string, violations []linter.Violation, code linter.Rule) string {
	var edits []linter.Edit
	for _, v := range violations {
		if v.Code == code && v.Fix != nil {
			edits = append(edits, v.Fix.Edits...)
		}
	}
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].Range.Start > edits[j].Range.Start })
	for _, e := range edits {
		replacement := ""
		if e.Text != nil {
			replacement = *e.Text
		}
		text = text[:e.Range.Start] + replacement + text[e.Range.End:]
	}
	return text
}

// --- spec scenarios -------------------------------------------------------

func TestScenarioAddRequiredIntegerColumn(t *testing.T) {
	sql := `ALTER TABLE "t" ADD COLUMN "f" integer NOT NULL;`
	got := codes(lintAll(sql))

	// The three codes must appear in this relative order (by text range).
	want := []linter.Rule{
		linter.RuleAddingRequiredField,
		linter.RulePreferRobustStmts,
		linter.RulePreferBigintOverInt,
	}
	i := 0
	for _, c := range got {
		if i < len(want) && c == want[i] {
			i++
		}
	}
	assert.Equal(t, len(want), i, "expected %v as an in-order subsequence of %v", want, got)
}

func TestScenarioCreateIndexAlone(t *testing.T) {
	sql := `CREATE INDEX "ix" ON "t"("c");`
	got := codes(lintAll(sql))
	// The single-statement exemption silences prefer-robust-stmts but not
	// require-concurrent-index-creation.
	assert.Equal(t, []linter.Rule{linter.RuleRequireConcurrentIndexCreation}, got)
}

const checkBackedNotNullMigration = `BEGIN;
ALTER TABLE foo ADD COLUMN bar BIGINT;
ALTER TABLE foo ADD CONSTRAINT bar_not_null CHECK (bar IS NOT NULL) NOT VALID;
COMMIT;
BEGIN;
ALTER TABLE foo VALIDATE CONSTRAINT bar_not_null;
ALTER TABLE foo ALTER COLUMN bar SET NOT NULL;
ALTER TABLE foo DROP CONSTRAINT bar_not_null;
COMMIT;
`

func TestScenarioCheckBackedSetNotNull(t *testing.T) {
	settings := linter.Settings{PGVersion: linter.NewVersion(16, 0, 0)}
	got := lintWith(checkBackedNotNullMigration, settings, linter.RuleAddingNotNullableField)
	assert.Empty(t, got, "validated CHECK (bar IS NOT NULL) makes SET NOT NULL safe on pg16")

	settings.PGVersion = linter.NewVersion(11, 0, 0)
	got = lintWith(checkBackedNotNullMigration, settings, linter.RuleAddingNotNullableField)
	assert.NotZero(t, countCode(got, linter.RuleAddingNotNullableField),
		"pg11 has no CHECK-backed fast path")
}

func TestScenarioUncommittedTransaction(t *testing.T) {
	sql := "BEGIN;\nCREATE TABLE u(id bigint);"
	got := lintAll(sql)
	require.Equal(t, []linter.Rule{linter.RuleBanUncommittedTransaction}, codes(got))

	v := got[0]
	require.NotNil(t, v.Fix)
	require.Len(t, v.Fix.Edits, 1)
	edit := v.Fix.Edits[0]
	assert.Equal(t, len(sql), edit.Range.Start)
	assert.Equal(t, len(sql), edit.Range.End)
	require.NotNil(t, edit.Text)
	assert.Equal(t, "\nCOMMIT;\n", *edit.Text)

	fixed := applyFixes(sql, got, linter.RuleBanUncommittedTransaction)
	assert.Zero(t, countCode(lintAll(fixed), linter.RuleBanUncommittedTransaction))
}

func TestScenarioTimeoutSettings(t *testing.T) {
	sql := "ALTER TABLE t ADD COLUMN c BOOLEAN;"
	got := lintAll(sql)
	require.Equal(t, 2, countCode(got, linter.RuleRequireTimeoutSettings),
		"one violation each for lock_timeout and statement_timeout")

	fixed := applyFixes(sql, got, linter.RuleRequireTimeoutSettings)
	assert.Zero(t, countCode(lintAll(fixed), linter.RuleRequireTimeoutSettings),
		"fixed input was %q", fixed)
}

func TestScenarioIgnoreDirective(t *testing.T) {
	sql := "-- squawk-ignore next-statement prefer-bigint-over-int\n" +
		"ALTER TABLE t ADD COLUMN c integer;"
	got := lintAll(sql)
	assert.Zero(t, countCode(got, linter.RulePreferBigintOverInt), "directive suppresses the int warning")
	assert.NotZero(t, countCode(got, linter.RuleRequireTimeoutSettings), "other violations remain")
}

// --- universal properties -------------------------------------------------

var propertyCorpus = []string{
	"",
	"SELECT 1",
	`ALTER TABLE "t" ADD COLUMN "f" integer NOT NULL;`,
	"BEGIN;\nCREATE TABLE u(id bigint);",
	checkBackedNotNullMigration,
	"DROP TABLE a; DROP INDEX b; DROP DATABASE c;",
	"CREATE TABLE bad (a int, b smallint, c serial, d varchar(5), e timestamp, f char(3));",
	"SELECT 'unterminated",
	"??? garbage ???;",
}

func TestViolationsSortedAndInRange(t *testing.T) {
	for _, sql := range propertyCorpus {
		got := lintAll(sql)
		prev := 0
		for _, v := range got {
			assert.GreaterOrEqual(t, v.Range.Start, prev, "sorted by start in %q", sql)
			prev = v.Range.Start
			assert.GreaterOrEqual(t, v.Range.Start, 0)
			assert.LessOrEqual(t, v.Range.End, len(sql), "range inside file in %q", sql)
			assert.LessOrEqual(t, v.Range.Start, v.Range.End)
		}
	}
}

func TestLintIsIdempotent(t *testing.T) {
	for _, sql := range propertyCorpus {
		first := lintAll(sql)
		second := lintAll(sql)
		assert.Equal(t, first, second, "same input and settings must produce equal output for %q", sql)
	}
}

func TestFixEditsNeverOverlap(t *testing.T) {
	for _, sql := range propertyCorpus {
		for _, v := range lintAll(sql) {
			if v.Fix == nil {
				continue
			}
			edits := v.Fix.Edits
			for i := 0; i < len(edits); i++ {
				for j := i + 1; j < len(edits); j++ {
					a, b := edits[i].Range, edits[j].Range
					overlap := a.Start < b.End && b.Start < a.End
					assert.False(t, overlap, "edits %v and %v overlap in %q", a, b, sql)
				}
			}
		}
	}
}

func TestSyntaxErrorsSurfaceAsViolations(t *testing.T) {
	got := lintAll("SELECT 'unterminated")
	require.NotZero(t, countCode(got, linter.RuleSyntaxError))
	for _, v := range got {
		if v.Code == linter.RuleSyntaxError {
			assert.Equal(t, linter.LevelError, v.Level)
		}
	}
}

// --- per-rule cases -------------------------------------------------------

func TestRuleTriggers(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		rule  linter.Rule
		fires bool
	}{
		{"create index not concurrent", `CREATE INDEX ix ON t (c);`, linter.RuleRequireConcurrentIndexCreation, true},
		{"create index concurrently ok", `CREATE INDEX CONCURRENTLY ix ON t (c);`, linter.RuleRequireConcurrentIndexCreation, false},
		{"index on fresh table ok", "BEGIN;\nCREATE TABLE t (a int);\nCREATE INDEX ix ON t (a);\nCOMMIT;", linter.RuleRequireConcurrentIndexCreation, false},

		{"drop index", `DROP INDEX ix;`, linter.RuleRequireConcurrentIndexDeletion, true},
		{"drop index concurrently ok", `DROP INDEX CONCURRENTLY ix;`, linter.RuleRequireConcurrentIndexDeletion, false},

		{"add check constraint", `ALTER TABLE t ADD CONSTRAINT ck CHECK (a > 0);`, linter.RuleConstraintMissingNotValid, true},
		{"add check not valid ok", `ALTER TABLE t ADD CONSTRAINT ck CHECK (a > 0) NOT VALID;`, linter.RuleConstraintMissingNotValid, false},
		{"check on fresh table ok", "BEGIN;\nCREATE TABLE t (a int);\nALTER TABLE t ADD CONSTRAINT ck CHECK (a > 0);\nCOMMIT;", linter.RuleConstraintMissingNotValid, false},

		{"add fk plain", `ALTER TABLE t ADD CONSTRAINT fk FOREIGN KEY (uid) REFERENCES u (id);`, linter.RuleAddingForeignKeyConstraint, true},
		{"add fk not valid ok", `ALTER TABLE t ADD CONSTRAINT fk FOREIGN KEY (uid) REFERENCES u (id) NOT VALID;`, linter.RuleAddingForeignKeyConstraint, false},
		{"add column references", `ALTER TABLE t ADD COLUMN uid bigint REFERENCES u (id);`, linter.RuleAddingForeignKeyConstraint, true},

		{"alter column type", `ALTER TABLE t ALTER COLUMN c TYPE bigint;`, linter.RuleChangingColumnType, true},
		{"alter column default ok", `ALTER TABLE t ALTER COLUMN c SET DEFAULT 1;`, linter.RuleChangingColumnType, false},

		{"set not null", `ALTER TABLE t ALTER COLUMN c SET NOT NULL;`, linter.RuleAddingNotNullableField, true},

		{"add not null column", `ALTER TABLE t ADD COLUMN c int NOT NULL;`, linter.RuleAddingRequiredField, true},
		{"add not null with default ok", `ALTER TABLE t ADD COLUMN c int DEFAULT 0 NOT NULL;`, linter.RuleAddingRequiredField, false},
		{"add not null volatile default", `ALTER TABLE t ADD COLUMN c timestamptz DEFAULT now() NOT NULL;`, linter.RuleAddingRequiredField, true},
		{"add identity column ok", `ALTER TABLE t ADD COLUMN id bigint GENERATED ALWAYS AS IDENTITY NOT NULL;`, linter.RuleAddingRequiredField, false},

		{"add primary key", `ALTER TABLE t ADD PRIMARY KEY (id);`, linter.RuleAddingSerialPrimaryKeyField, true},
		{"add pk using index ok", `ALTER TABLE t ADD CONSTRAINT pk PRIMARY KEY USING INDEX pk_idx;`, linter.RuleAddingSerialPrimaryKeyField, false},
		{"add pk column", `ALTER TABLE t ADD COLUMN id bigserial PRIMARY KEY;`, linter.RuleAddingSerialPrimaryKeyField, true},

		{"rename column", `ALTER TABLE t RENAME COLUMN a TO b;`, linter.RuleRenamingColumn, true},
		{"rename column no keyword", `ALTER TABLE t RENAME a TO b;`, linter.RuleRenamingColumn, true},
		{"rename table", `ALTER TABLE t RENAME TO t2;`, linter.RuleRenamingTable, true},

		{"add unique", `ALTER TABLE t ADD CONSTRAINT uq UNIQUE (email);`, linter.RuleDisallowedUniqueConstraint, true},
		{"add unique using index ok", `ALTER TABLE t ADD CONSTRAINT uq UNIQUE USING INDEX uq_idx;`, linter.RuleDisallowedUniqueConstraint, false},
		{"unique on fresh table ok", "BEGIN;\nCREATE TABLE t (a int);\nALTER TABLE t ADD CONSTRAINT uq UNIQUE (a);\nCOMMIT;", linter.RuleDisallowedUniqueConstraint, false},

		{"drop database", `DROP DATABASE prod;`, linter.RuleBanDropDatabase, true},
		{"drop table", `DROP TABLE t;`, linter.RuleBanDropTable, true},
		{"drop column", `ALTER TABLE t DROP COLUMN c;`, linter.RuleBanDropColumn, true},
		{"drop not null", `ALTER TABLE t ALTER COLUMN c DROP NOT NULL;`, linter.RuleBanDropNotNull, true},

		{"integer column", `CREATE TABLE t (a integer);`, linter.RulePreferBigintOverInt, true},
		{"int4 column", `CREATE TABLE t (a int4);`, linter.RulePreferBigintOverInt, true},
		{"bigint ok", `CREATE TABLE t (a bigint);`, linter.RulePreferBigintOverInt, false},
		{"alter type to int", `ALTER TABLE t ALTER COLUMN c TYPE int;`, linter.RulePreferBigintOverInt, true},

		{"smallint column", `CREATE TABLE t (a smallint);`, linter.RulePreferBigintOverSmallint, true},
		{"int2 column", `CREATE TABLE t (a int2);`, linter.RulePreferBigintOverSmallint, true},
		{"int not smallint", `CREATE TABLE t (a integer);`, linter.RulePreferBigintOverSmallint, false},

		{"serial column", `CREATE TABLE t (id serial);`, linter.RulePreferIdentity, true},
		{"bigserial column", `CREATE TABLE t (id bigserial);`, linter.RulePreferIdentity, true},
		{"identity ok", `CREATE TABLE t (id bigint GENERATED BY DEFAULT AS IDENTITY);`, linter.RulePreferIdentity, false},

		{"varchar sized", `CREATE TABLE t (a varchar(255));`, linter.RulePreferTextField, true},
		{"character varying sized", `CREATE TABLE t (a character varying(100));`, linter.RulePreferTextField, true},
		{"varchar unsized ok", `CREATE TABLE t (a varchar);`, linter.RulePreferTextField, false},
		{"text ok", `CREATE TABLE t (a text);`, linter.RulePreferTextField, false},

		{"timestamp column", `CREATE TABLE t (ts timestamp);`, linter.RulePreferTimestamptz, true},
		{"timestamp precision", `CREATE TABLE t (ts timestamp(3));`, linter.RulePreferTimestamptz, true},
		{"timestamp without tz", `CREATE TABLE t (ts timestamp without time zone);`, linter.RulePreferTimestamptz, true},
		{"timestamptz ok", `CREATE TABLE t (ts timestamptz);`, linter.RulePreferTimestamptz, false},
		{"timestamp with tz ok", `CREATE TABLE t (ts timestamp with time zone);`, linter.RulePreferTimestamptz, false},

		{"char column", `CREATE TABLE t (a char(10));`, linter.RuleBanCharField, true},
		{"character column", `CREATE TABLE t (a character(10));`, linter.RuleBanCharField, true},
		{"character varying not char", `CREATE TABLE t (a character varying(10));`, linter.RuleBanCharField, false},

		{"domain with check", `CREATE DOMAIN posint AS integer CHECK (VALUE > 0);`, linter.RuleBanCreateDomainWithConstraint, true},
		{"domain plain ok", `CREATE DOMAIN posint AS integer;`, linter.RuleBanCreateDomainWithConstraint, false},
		{"alter domain add constraint", `ALTER DOMAIN posint ADD CONSTRAINT pos CHECK (VALUE > 0);`, linter.RuleBanAlterDomainWithAddConstraint, true},

		{"cic in transaction", "BEGIN;\nCREATE INDEX CONCURRENTLY ix ON t (c);\nCOMMIT;", linter.RuleBanConcurrentIndexCreationInTransaction, true},
		{"cic outside ok", `CREATE INDEX CONCURRENTLY ix ON t (c);`, linter.RuleBanConcurrentIndexCreationInTransaction, false},

		{"nested begin", "BEGIN;\nBEGIN;\nCOMMIT;", linter.RuleTransactionNesting, true},
		{"unmatched commit", "COMMIT;", linter.RuleTransactionNesting, true},
		{"balanced ok", "BEGIN;\nSELECT 1;\nCOMMIT;", linter.RuleTransactionNesting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lintWith(tt.sql, linter.DefaultSettings(), tt.rule)
			if tt.fires {
				assert.NotZero(t, countCode(got, tt.rule), "expected %s for %q, got %v", tt.rule, tt.sql, codes(got))
			} else {
				assert.Zero(t, countCode(got, tt.rule), "unexpected %s for %q", tt.rule, tt.sql)
			}
		})
	}
}

func TestAddingFieldWithDefaultVersionGate(t *testing.T) {
	sql := `ALTER TABLE t ADD COLUMN c int DEFAULT 1;`
	pg10 := linter.Settings{PGVersion: linter.NewVersion(10, 0, 0)}
	got := lintWith(sql, pg10, linter.RuleAddingFieldWithDefault)
	assert.NotZero(t, countCode(got, linter.RuleAddingFieldWithDefault), "any default rewrites pre-11 tables")

	pg15 := linter.Settings{PGVersion: linter.NewVersion(15, 0, 0)}
	got = lintWith(sql, pg15, linter.RuleAddingFieldWithDefault)
	assert.Zero(t, countCode(got, linter.RuleAddingFieldWithDefault), "constant defaults are catalog-only from pg11")

	volatile := `ALTER TABLE t ADD COLUMN c timestamptz DEFAULT now();`
	got = lintWith(volatile, pg15, linter.RuleAddingFieldWithDefault)
	assert.NotZero(t, countCode(got, linter.RuleAddingFieldWithDefault), "volatile defaults still rewrite")
}

func TestPreferRobustStmts(t *testing.T) {
	t.Run("drop then re-add constraint ok", func(t *testing.T) {
		sql := `ALTER TABLE "app_email" DROP CONSTRAINT IF EXISTS "email_uniq";
ALTER TABLE "app_email" ADD CONSTRAINT "email_uniq" UNIQUE USING INDEX "email_idx";`
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.Empty(t, got)
	})

	t.Run("second add of same constraint fires", func(t *testing.T) {
		sql := `ALTER TABLE "e" DROP CONSTRAINT IF EXISTS "uq";
ALTER TABLE "e" ADD CONSTRAINT "uq" UNIQUE USING INDEX "i";
ALTER TABLE "e" ADD CONSTRAINT "uq" UNIQUE USING INDEX "i";`
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.NotEmpty(t, got)
	})

	t.Run("validate of tracked constraint ok", func(t *testing.T) {
		sql := `ALTER TABLE e DROP CONSTRAINT IF EXISTS fk;
ALTER TABLE e ADD CONSTRAINT fk FOREIGN KEY (uid) REFERENCES u (id) NOT VALID;
ALTER TABLE e VALIDATE CONSTRAINT fk;`
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.Empty(t, got)
	})

	t.Run("inside transaction ok", func(t *testing.T) {
		sql := "BEGIN;\nALTER TABLE t ADD COLUMN a integer;\nCREATE TABLE s (x int);\nCOMMIT;"
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.Empty(t, got)
	})

	t.Run("assume in transaction ok", func(t *testing.T) {
		sql := "SELECT 1;\nALTER TABLE t ADD COLUMN a integer;"
		settings := linter.DefaultSettings()
		settings.AssumeInTransaction = true
		got := lintWith(sql, settings, linter.RulePreferRobustStmts)
		assert.Empty(t, got)
	})

	t.Run("guarded statements ok", func(t *testing.T) {
		sql := `SELECT 1;
CREATE TABLE IF NOT EXISTS t (a int);
CREATE INDEX CONCURRENTLY IF NOT EXISTS ix ON t (a);
DROP TABLE IF EXISTS old;
DROP INDEX IF EXISTS old_ix;
ALTER TABLE t ADD COLUMN IF NOT EXISTS b int, DROP COLUMN IF EXISTS c;`
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.Empty(t, got)
	})

	t.Run("unguarded statements fire", func(t *testing.T) {
		sql := "SELECT 1;\nCREATE TABLE t (a int);\nDROP TABLE old;"
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.Equal(t, 2, len(got))
	})

	t.Run("concurrent index inside transaction still needs guard", func(t *testing.T) {
		sql := "BEGIN;\nCREATE INDEX CONCURRENTLY ix ON t (a);\nCOMMIT;"
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		assert.NotEmpty(t, got, "CONCURRENTLY escapes the transaction, so the guard requirement sticks")
	})

	t.Run("unnamed concurrent index gets help text", func(t *testing.T) {
		sql := "SELECT 1;\nCREATE INDEX CONCURRENTLY ON t (a);"
		got := lintWith(sql, linter.DefaultSettings(), linter.RulePreferRobustStmts)
		require.NotEmpty(t, got)
		assert.Contains(t, got[0].Help, "explicit name")
	})
}

func TestTransactionNestingAssumeInTransaction(t *testing.T) {
	settings := linter.DefaultSettings()
	settings.AssumeInTransaction = true
	got := lintWith("BEGIN;\nSELECT 1;\nCOMMIT;", settings, linter.RuleTransactionNesting)
	assert.Equal(t, 2, len(got), "explicit BEGIN and COMMIT both clash with the runner's transaction")
}

func TestRequireTimeoutSettingsRecognizesPresentSettings(t *testing.T) {
	sql := "SET lock_timeout = '1s';\nSET statement_timeout = '5s';\nALTER TABLE t ADD COLUMN c int;"
	got := lintWith(sql, linter.DefaultSettings(), linter.RuleRequireTimeoutSettings)
	assert.Empty(t, got)

	// Case-insensitive setting names.
	sql = "SET Lock_Timeout = '1s';\nSET Statement_Timeout = '5s';\nALTER TABLE t ADD COLUMN c int;"
	got = lintWith(sql, linter.DefaultSettings(), linter.RuleRequireTimeoutSettings)
	assert.Empty(t, got)

	// Settings after the DDL don't count.
	sql = "ALTER TABLE t ADD COLUMN c int;\nSET lock_timeout = '1s';\nSET statement_timeout = '5s';"
	got = lintWith(sql, linter.DefaultSettings(), linter.RuleRequireTimeoutSettings)
	assert.Equal(t, 2, len(got))
}

func TestRequireTimeoutSettingsFixKeepsLeadingComment(t *testing.T) {
	sql := "-- migration 042\nALTER TABLE t ADD COLUMN c int;"
	got := lintWith(sql, linter.DefaultSettings(), linter.RuleRequireTimeoutSettings)
	require.Equal(t, 2, len(got))
	fixed := applyFixes(sql, got, linter.RuleRequireTimeoutSettings)
	assert.Contains(t, fixed, "-- migration 042\n")
	assert.Less(t,
		len("-- migration 042\n")-1,
		indexOf(fixed, "set lock_timeout"),
		"insertion lands after the comment block: %q", fixed)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestUnusedIgnoreReportedWhenEnabled(t *testing.T) {
	sql := "-- squawk-ignore next-statement ban-drop-table\nSELECT 1;"
	got := lintWith(sql, linter.DefaultSettings(), linter.RuleUnusedIgnore, linter.RuleBanDropTable)
	assert.NotZero(t, countCode(got, linter.RuleUnusedIgnore))

	// The same directive actually suppressing something is not unused.
	sql = "-- squawk-ignore next-statement ban-drop-table\nDROP TABLE t;"
	got = lintWith(sql, linter.DefaultSettings(), linter.RuleUnusedIgnore, linter.RuleBanDropTable)
	assert.Zero(t, countCode(got, linter.RuleUnusedIgnore))
	assert.Zero(t, countCode(got, linter.RuleBanDropTable))
}
