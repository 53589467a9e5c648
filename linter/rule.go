package linter

import "fmt"

// Rule identifies one lint check. String/ParseRule round-trip through the
// lowercase kebab-case wire format (spec.md §6: "serialization of the Rule
// enum must round-trip"), grounded on
// original_source/crates/squawk_linter/src/lib.rs's Rule enum and its
// serde(rename_all = "kebab-case") variants.
type Rule int

const (
	RuleRequireConcurrentIndexCreation Rule = iota
	RuleRequireConcurrentIndexDeletion
	RuleConstraintMissingNotValid
	RuleAddingFieldWithDefault
	RuleAddingForeignKeyConstraint
	RuleChangingColumnType
	RuleAddingNotNullableField
	RuleAddingRequiredField
	RuleAddingSerialPrimaryKeyField
	RuleRenamingColumn
	RuleRenamingTable
	RuleDisallowedUniqueConstraint
	RuleBanDropDatabase
	RuleBanDropTable
	RuleBanDropColumn
	RuleBanDropNotNull
	RulePreferBigintOverInt
	RulePreferBigintOverSmallint
	RulePreferIdentity
	RulePreferTextField
	RulePreferTimestamptz
	RuleBanCharField
	RuleBanCreateDomainWithConstraint
	RuleBanAlterDomainWithAddConstraint
	RuleBanConcurrentIndexCreationInTransaction
	RuleTransactionNesting
	RulePreferRobustStmts
	RuleBanUncommittedTransaction
	RuleRequireTimeoutSettings

	// RuleUnusedIgnore is a reserved rule code (spec.md §4.8: "A directive
	// that never suppresses any violation may, under the unused-ignore
	// rule, be surfaced as a diagnostic itself"). It round-trips through
	// String/ParseRule like any other rule but is excluded from
	// WithAllRules' default set; see Linter.Lint.
	RuleUnusedIgnore

	// RuleSyntaxError is the synthetic code syntax errors are reported
	// under (spec.md §7). Never enabled or disabled directly — Lint
	// always surfaces parse errors — but it still lives in the Rule enum
	// so Violation.Code has one consistent type and Rule.String() never
	// needs a special case outside this table.
	RuleSyntaxError

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleRequireConcurrentIndexCreation:          "require-concurrent-index-creation",
	RuleRequireConcurrentIndexDeletion:          "require-concurrent-index-deletion",
	RuleConstraintMissingNotValid:               "constraint-missing-not-valid",
	RuleAddingFieldWithDefault:                  "adding-field-with-default",
	RuleAddingForeignKeyConstraint:              "adding-foreign-key-constraint",
	RuleChangingColumnType:                      "changing-column-type",
	RuleAddingNotNullableField:                  "adding-not-nullable-field",
	RuleAddingRequiredField:                     "adding-required-field",
	RuleAddingSerialPrimaryKeyField:              "adding-serial-primary-key-field",
	RuleRenamingColumn:                          "renaming-column",
	RuleRenamingTable:                           "renaming-table",
	RuleDisallowedUniqueConstraint:              "disallowed-unique-constraint",
	RuleBanDropDatabase:                         "ban-drop-database",
	RuleBanDropTable:                            "ban-drop-table",
	RuleBanDropColumn:                           "ban-drop-column",
	RuleBanDropNotNull:                          "ban-drop-not-null",
	RulePreferBigintOverInt:                     "prefer-bigint-over-int",
	RulePreferBigintOverSmallint:                "prefer-bigint-over-smallint",
	RulePreferIdentity:                          "prefer-identity",
	RulePreferTextField:                         "prefer-text-field",
	RulePreferTimestamptz:                       "prefer-timestamptz",
	RuleBanCharField:                            "ban-char-field",
	RuleBanCreateDomainWithConstraint:           "ban-create-domain-with-constraint",
	RuleBanAlterDomainWithAddConstraint:         "ban-alter-domain-with-add-constraint",
	RuleBanConcurrentIndexCreationInTransaction: "ban-concurrent-index-creation-in-transaction",
	RuleTransactionNesting:                      "transaction-nesting",
	RulePreferRobustStmts:                       "prefer-robust-stmts",
	RuleBanUncommittedTransaction:               "ban-uncommitted-transaction",
	RuleRequireTimeoutSettings:                  "require-timeout-settings",
	RuleUnusedIgnore:                            "unused-ignore",
	RuleSyntaxError:                             "syntax-error",
}

var ruleByName map[string]Rule

func init() {
	ruleByName = make(map[string]Rule, len(ruleNames))
	for r, name := range ruleNames {
		ruleByName[name] = Rule(r)
	}
}

// String returns the rule's kebab-case wire name.
func (r Rule) String() string {
	if r < 0 || r >= ruleCount {
		return fmt.Sprintf("rule(%d)", int(r))
	}
	return ruleNames[r]
}

// ParseRule resolves a kebab-case wire name back to a Rule.
func ParseRule(s string) (Rule, bool) {
	r, ok := ruleByName[s]
	return r, ok
}

// AllRules returns every rule except RuleUnusedIgnore and the synthetic
// RuleSyntaxError, in declaration order — the set WithAllRules enables by
// default.
func AllRules() []Rule {
	out := make([]Rule, 0, int(ruleCount)-2)
	for r := Rule(0); r < ruleCount; r++ {
		if r == RuleUnusedIgnore || r == RuleSyntaxError {
			continue
		}
		out = append(out, r)
	}
	return out
}
