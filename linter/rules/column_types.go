// The column-type family: prefer-bigint-over-int,
// prefer-bigint-over-smallint, prefer-identity, prefer-text-field,
// prefer-timestamptz, and ban-char-field. Grounded on original_source's
// rules of the same names; all six iterate the same TYPE_NAME sites (column
// definitions and ALTER COLUMN ... TYPE targets) and differ only in which
// spellings they object to.

package rules

import (
	"strings"

	"github.com/pgsentry/pgsentry/linter"
)

func init() {
	linter.Register(linter.RulePreferBigintOverInt, preferBigintOverInt)
	linter.Register(linter.RulePreferBigintOverSmallint, preferBigintOverSmallint)
	linter.Register(linter.RulePreferIdentity, preferIdentity)
	linter.Register(linter.RulePreferTextField, preferTextField)
	linter.Register(linter.RulePreferTimestamptz, preferTimestamptz)
	linter.Register(linter.RuleBanCharField, banCharField)
}

var int4Types = map[string]bool{"int": true, "int4": true, "integer": true}

func preferBigintOverInt(rc *linter.RuleContext) {
	forEachType(rc, func(base, _ string) (string, string, bool) {
		if !int4Types[base] {
			return "", "", false
		}
		return "A 32-bit integer column can overflow as the table grows.",
			"Use `bigint` (64 bits) instead.", true
	}, linter.RulePreferBigintOverInt)
}

var int2Types = map[string]bool{"smallint": true, "int2": true}

func preferBigintOverSmallint(rc *linter.RuleContext) {
	forEachType(rc, func(base, _ string) (string, string, bool) {
		if !int2Types[base] {
			return "", "", false
		}
		return "A 16-bit integer column can overflow as the table grows.",
			"Use `bigint` (64 bits) instead.", true
	}, linter.RulePreferBigintOverSmallint)
}

var serialTypes = map[string]bool{
	"serial": true, "serial2": true, "serial4": true, "serial8": true,
	"smallserial": true, "bigserial": true,
}

func preferIdentity(rc *linter.RuleContext) {
	forEachType(rc, func(base, _ string) (string, string, bool) {
		if !serialTypes[base] {
			return "", "", false
		}
		return "`serial` types have weaker permission and sequence-ownership semantics than identity columns.",
			"Use `GENERATED BY DEFAULT AS IDENTITY` instead.", true
	}, linter.RulePreferIdentity)
}

func preferTextField(rc *linter.RuleContext) {
	forEachType(rc, func(base, full string) (string, string, bool) {
		sized := strings.Contains(full, "(")
		if !sized || (base != "varchar" && base != "character varying") {
			return "", "", false
		}
		return "Changing a `varchar(n)` length limit later requires an exclusive lock.",
			"Use `text` with a `CHECK` constraint on the length instead.", true
	}, linter.RulePreferTextField)
}

func preferTimestamptz(rc *linter.RuleContext) {
	forEachType(rc, func(base, full string) (string, string, bool) {
		// Matches "timestamp", "timestamp(3)", and "timestamp without time
		// zone", but not "timestamptz" or any "with time zone" spelling.
		if base == "timestamptz" || !strings.HasPrefix(full, "timestamp") ||
			strings.Contains(full, "with time zone") {
			return "", "", false
		}
		return "`timestamp` stores no time zone; arithmetic across zones silently goes wrong.",
			"Use `timestamptz` instead.", true
	}, linter.RulePreferTimestamptz)
}

func banCharField(rc *linter.RuleContext) {
	forEachType(rc, func(base, full string) (string, string, bool) {
		if base != "char" && base != "character" {
			return "", "", false
		}
		if strings.Contains(full, "varying") {
			return "", "", false
		}
		return "`char(n)` pads values with spaces, which surprises comparisons and wastes storage.",
			"Use `text` or `varchar` instead.", true
	}, linter.RuleBanCharField)
}

// forEachType runs match over every column type site in the file and
// reports a violation at each site it accepts. match receives the
// normalized base name ("varchar") and the full normalized spelling
// ("varchar(100)") and returns the message/help pair when it fires.
func forEachType(rc *linter.RuleContext, match func(base, full string) (string, string, bool), code linter.Rule) {
	for _, tn := range typeNameSites(rc.File) {
		full := normalizeTypeName(tn.Text())
		if msg, help, ok := match(baseTypeName(full), full); ok {
			rc.Report(violation(code, msg, help,
				linter.TextRange{Start: tn.Offset(), End: tn.EndOffset()}))
		}
	}
}
