package linter

// Settings carries the configuration rule analyzers consult (spec.md §6:
// "{pg_version: (major, minor?, patch?), assume_in_transaction: bool}").
// DefaultSettings supplies DefaultVersion (15) and AssumeInTransaction
// false, the stricter choice for rules like prefer-robust-stmts that only
// fire outside a transaction. A Settings value built without a PGVersion
// holds 0.0.0, which every version gate treats as older than any release.
type Settings struct {
	PGVersion Version

	// AssumeInTransaction short-circuits every rule's inside/outside
	// transaction check to "inside" — for callers that run each statement
	// through the linter individually but know the statements will later
	// be wrapped in a single transaction by their migration runner.
	AssumeInTransaction bool
}

// DefaultSettings returns the conservative default: pg15, not assumed to
// be inside a transaction.
func DefaultSettings() Settings {
	return Settings{PGVersion: DefaultVersion}
}
