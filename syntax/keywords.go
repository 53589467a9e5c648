package syntax

import "sort"

// keywordKindBase is the first Kind value assigned to a keyword; see the
// numeric layout comment in kind.go.
const keywordKindBase Kind = 1024

// keywordList holds every keyword word, sorted, in the order their Kind
// values are assigned: keywordList[i] has Kind keywordKindBase+Kind(i).
//
// These tables are built by var initializers, not an init func, so the
// named *_KW vars below (whose mustKeyword calls depend on keywordKind
// through LookupKeyword) are ordered after them by the runtime's
// initialization-dependency analysis.
var keywordList = func() []string {
	words := make([]string, len(keywordData))
	for i, e := range keywordData {
		words[i] = e.word
	}
	sort.Strings(words)
	return words
}()

// keywordKind maps a lowercased keyword word to its Kind.
var keywordKind = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordList))
	for i, w := range keywordList {
		m[w] = keywordKindBase + Kind(i)
	}
	return m
}()

// keywordCategory maps a Kind back to its KeywordCategory. The bare-label
// flag (whether a word can stand alone as a column label without AS) is
// kept separately in keywordBareLabel.
var keywordCategory = func() map[Kind]KeywordCategory {
	m := make(map[Kind]KeywordCategory, len(keywordData))
	for _, e := range keywordData {
		m[keywordKind[e.word]] = e.category
	}
	return m
}()

var keywordBareLabel = func() map[Kind]bool {
	m := make(map[Kind]bool, len(keywordData))
	for _, e := range keywordData {
		m[keywordKind[e.word]] = e.canBareLabel
	}
	return m
}()

// LookupKeyword returns the Kind for word (case-insensitive callers must
// lowercase first) and whether it is a recognized keyword at all.
func LookupKeyword(lowerWord string) (Kind, bool) {
	k, ok := keywordKind[lowerWord]
	return k, ok
}

// Category returns the KeywordCategory for a keyword Kind. Panics if k is
// not a keyword Kind; callers must check IsKeyword first.
func (k Kind) Category() KeywordCategory {
	c, ok := keywordCategory[k]
	if !ok {
		panic("syntax: Category called on non-keyword Kind")
	}
	return c
}

// CanBareLabel reports whether the keyword Kind may be used, unquoted and
// without AS, as an output column label.
func (k Kind) CanBareLabel() bool {
	return keywordBareLabel[k]
}

// keywordString returns the lowercase spelling of a keyword Kind. Callers
// must check IsKeyword first; see Kind.String in kind.go for the general
// case covering every kind, not just keywords.
func (k Kind) keywordString() string {
	return keywordList[k-keywordKindBase]
}

// Named keyword kinds referenced directly by the parser grammar and the
// rule engine. Looked up once at init time rather than hardcoding numeric
// offsets into the grammar.
var (
	SELECT_KW       = mustKeyword("select")
	INSERT_KW       = mustKeyword("insert")
	UPDATE_KW       = mustKeyword("update")
	DELETE_KW       = mustKeyword("delete")
	CREATE_KW       = mustKeyword("create")
	ALTER_KW        = mustKeyword("alter")
	DROP_KW         = mustKeyword("drop")
	TABLE_KW        = mustKeyword("table")
	INDEX_KW        = mustKeyword("index")
	VIEW_KW         = mustKeyword("view")
	MATERIALIZED_KW = mustKeyword("materialized")
	DOMAIN_KW       = mustKeyword("domain")
	SEQUENCE_KW     = mustKeyword("sequence")
	SCHEMA_KW       = mustKeyword("schema")
	EXTENSION_KW    = mustKeyword("extension")
	FUNCTION_KW     = mustKeyword("function")
	PROCEDURE_KW    = mustKeyword("procedure")
	TRIGGER_KW      = mustKeyword("trigger")
	TYPE_KW         = mustKeyword("type")
	PUBLICATION_KW  = mustKeyword("publication")
	SUBSCRIPTION_KW = mustKeyword("subscription")

	ADD_KW        = mustKeyword("add")
	COLUMN_KW     = mustKeyword("column")
	CONSTRAINT_KW = mustKeyword("constraint")
	FOREIGN_KW    = mustKeyword("foreign")
	KEY_KW        = mustKeyword("key")
	PRIMARY_KW    = mustKeyword("primary")
	UNIQUE_KW     = mustKeyword("unique")
	CHECK_KW      = mustKeyword("check")
	REFERENCES_KW = mustKeyword("references")

	NOT_KW      = mustKeyword("not")
	NULL_KW     = mustKeyword("null")
	VALID_KW    = mustKeyword("valid")
	VALIDATE_KW = mustKeyword("validate")
	DEFAULT_KW  = mustKeyword("default")
	GENERATED_KW = mustKeyword("generated")
	ALWAYS_KW   = mustKeyword("always")
	IDENTITY_KW = mustKeyword("identity")
	RENAME_KW   = mustKeyword("rename")
	TO_KW       = mustKeyword("to")

	BEGIN_KW       = mustKeyword("begin")
	START_KW       = mustKeyword("start")
	TRANSACTION_KW = mustKeyword("transaction")
	WORK_KW        = mustKeyword("work")
	COMMIT_KW      = mustKeyword("commit")
	ROLLBACK_KW    = mustKeyword("rollback")
	SAVEPOINT_KW   = mustKeyword("savepoint")
	RELEASE_KW     = mustKeyword("release")
	SET_KW         = mustKeyword("set")
	RESET_KW       = mustKeyword("reset")
	SHOW_KW        = mustKeyword("show")

	CONCURRENTLY_KW = mustKeyword("concurrently")
	IF_KW           = mustKeyword("if")
	EXISTS_KW       = mustKeyword("exists")
	USING_KW        = mustKeyword("using")
	CASCADE_KW      = mustKeyword("cascade")
	RESTRICT_KW     = mustKeyword("restrict")
	INCLUDE_KW      = mustKeyword("include")

	VARCHAR_KW   = mustKeyword("varchar")
	TIMESTAMP_KW = mustKeyword("timestamp")
	INTEGER_KW   = mustKeyword("integer")
	INT_KW       = mustKeyword("int")
	SMALLINT_KW  = mustKeyword("smallint")
	BIGINT_KW    = mustKeyword("bigint")
	CHAR_KW      = mustKeyword("char")
	CHARACTER_KW = mustKeyword("character")
	TEXT_KW      = mustKeyword("text")
	AS_KW        = mustKeyword("as")
	WITH_KW      = mustKeyword("with")
	WITHOUT_KW   = mustKeyword("without")
	ZONE_KW      = mustKeyword("zone")

	WHERE_KW    = mustKeyword("where")
	FROM_KW     = mustKeyword("from")
	INTO_KW     = mustKeyword("into")
	VALUES_KW   = mustKeyword("values")
	AND_KW      = mustKeyword("and")
	OR_KW       = mustKeyword("or")
	IS_KW       = mustKeyword("is")
	LIKE_KW     = mustKeyword("like")
	ILIKE_KW    = mustKeyword("ilike")
	BETWEEN_KW  = mustKeyword("between")
	IN_KW       = mustKeyword("in")
	CASE_KW     = mustKeyword("case")
	WHEN_KW     = mustKeyword("when")
	THEN_KW     = mustKeyword("then")
	ELSE_KW     = mustKeyword("else")
	END_KW      = mustKeyword("end")
	CAST_KW     = mustKeyword("cast")
	CALL_KW     = mustKeyword("call")
	DISTINCT_KW = mustKeyword("distinct")
	ORDER_KW    = mustKeyword("order")
	BY_KW       = mustKeyword("by")
	GROUP_KW    = mustKeyword("group")
	HAVING_KW   = mustKeyword("having")
	LIMIT_KW    = mustKeyword("limit")
	OFFSET_KW   = mustKeyword("offset")
	FETCH_KW    = mustKeyword("fetch")
	JOIN_KW     = mustKeyword("join")
	LEFT_KW     = mustKeyword("left")
	RIGHT_KW    = mustKeyword("right")
	FULL_KW     = mustKeyword("full")
	INNER_KW    = mustKeyword("inner")
	OUTER_KW    = mustKeyword("outer")
	CROSS_KW    = mustKeyword("cross")
	NATURAL_KW  = mustKeyword("natural")
	LATERAL_KW  = mustKeyword("lateral")
	ON_KW       = mustKeyword("on")
	UNION_KW    = mustKeyword("union")
	INTERSECT_KW = mustKeyword("intersect")
	EXCEPT_KW   = mustKeyword("except")
	ALL_KW      = mustKeyword("all")
	ANY_KW      = mustKeyword("any")
	SOME_KW     = mustKeyword("some")
	FILTER_KW   = mustKeyword("filter")
	OVER_KW     = mustKeyword("over")
	WINDOW_KW   = mustKeyword("window")
	PARTITION_KW = mustKeyword("partition")
	ROW_KW      = mustKeyword("row")
	ARRAY_KW    = mustKeyword("array")
	CONFLICT_KW = mustKeyword("conflict")
	NOTHING_KW  = mustKeyword("nothing")
	DO_KW       = mustKeyword("do")
	RETURNING_KW = mustKeyword("returning")
	INHERITS_KW  = mustKeyword("inherits")

	GRANT_KW       = mustKeyword("grant")
	REVOKE_KW      = mustKeyword("revoke")
	ROLE_KW        = mustKeyword("role")
	USER_KW        = mustKeyword("user")
	DATABASE_KW    = mustKeyword("database")
	TABLESPACE_KW  = mustKeyword("tablespace")
	REFRESH_KW     = mustKeyword("refresh")
	EXPLAIN_KW     = mustKeyword("explain")
	VACUUM_KW      = mustKeyword("vacuum")
	ANALYZE_KW     = mustKeyword("analyze")
	CLUSTER_KW     = mustKeyword("cluster")
	REINDEX_KW     = mustKeyword("reindex")
	TRUNCATE_KW    = mustKeyword("truncate")
	LISTEN_KW      = mustKeyword("listen")
	NOTIFY_KW      = mustKeyword("notify")
	PREPARE_KW     = mustKeyword("prepare")
	EXECUTE_KW     = mustKeyword("execute")
	DEALLOCATE_KW  = mustKeyword("deallocate")
	COMMENT_KW     = mustKeyword("comment")
	MERGE_KW       = mustKeyword("merge")
	COPY_KW        = mustKeyword("copy")

	LOCK_KW      = mustKeyword("lock")
	STATEMENT_KW = mustKeyword("statement")
	ISOLATION_KW = mustKeyword("isolation")
	LEVEL_KW     = mustKeyword("level")
	SESSION_KW   = mustKeyword("session")
	LOCAL_KW     = mustKeyword("local")

	UNLOGGED_KW = mustKeyword("unlogged")
	TEMP_KW     = mustKeyword("temp")
	TEMPORARY_KW = mustKeyword("temporary")
	ONLY_KW      = mustKeyword("only")

	SIMILAR_KW  = mustKeyword("similar")
	AT_KW       = mustKeyword("at")
	TIME_KW     = mustKeyword("time")
	OPERATOR_KW = mustKeyword("operator")
	VARIADIC_KW = mustKeyword("variadic")
	COLLATE_KW  = mustKeyword("collate")
	ASC_KW      = mustKeyword("asc")
	DESC_KW     = mustKeyword("desc")
	NULLS_KW    = mustKeyword("nulls")
	FIRST_KW    = mustKeyword("first")
	LAST_KW     = mustKeyword("last")
	FOLLOWING_KW = mustKeyword("following")
	PRECEDING_KW = mustKeyword("preceding")
	UNBOUNDED_KW = mustKeyword("unbounded")
	CURRENT_KW   = mustKeyword("current")
	RANGE_KW     = mustKeyword("range")
	ROWS_KW      = mustKeyword("rows")
	GROUPS_KW    = mustKeyword("groups")
	ROLLUP_KW    = mustKeyword("rollup")
	CUBE_KW      = mustKeyword("cube")
	GROUPING_KW  = mustKeyword("grouping")
	SETS_KW      = mustKeyword("sets")
	RECURSIVE_KW = mustKeyword("recursive")
	NAME_KW      = mustKeyword("name")
	NAMES_KW     = mustKeyword("names")
	TRUE_KW      = mustKeyword("true")
	FALSE_KW     = mustKeyword("false")
	UNKNOWN_KW   = mustKeyword("unknown")

	VARYING_KW = mustKeyword("varying")
	NUMERIC_KW = mustKeyword("numeric")
	DECIMAL_KW = mustKeyword("decimal")
	REAL_KW    = mustKeyword("real")
	DOUBLE_KW  = mustKeyword("double")
	PRECISION_KW = mustKeyword("precision")
	BOOLEAN_KW = mustKeyword("boolean")

	NEXT_KW       = mustKeyword("next")
	SHARE_KW      = mustKeyword("share")
	NOWAIT_KW     = mustKeyword("nowait")
	SKIP_KW       = mustKeyword("skip")
	NO_KW         = mustKeyword("no")
	TABLESAMPLE_KW = mustKeyword("tablesample")

	OVERRIDING_KW = mustKeyword("overriding")
	SYSTEM_KW     = mustKeyword("system")
	VALUE_KW      = mustKeyword("value")

	FOR_KW Kind = mustKeyword("for")
	OF_KW  Kind = mustKeyword("of")

	// DDL: table/column constraints, referential actions.
	MATCH_KW      = mustKeyword("match")
	SIMPLE_KW     = mustKeyword("simple")
	PARTIAL_KW    = mustKeyword("partial")
	ACTION_KW     = mustKeyword("action")
	DEFERRABLE_KW = mustKeyword("deferrable")
	INITIALLY_KW  = mustKeyword("initially")
	IMMEDIATE_KW  = mustKeyword("immediate")
	DEFERRED_KW   = mustKeyword("deferred")

	// DDL: sequences, CREATE TABLE options.
	INCREMENT_KW = mustKeyword("increment")
	MINVALUE_KW  = mustKeyword("minvalue")
	MAXVALUE_KW  = mustKeyword("maxvalue")
	CACHE_KW     = mustKeyword("cache")
	CYCLE_KW     = mustKeyword("cycle")
	OWNED_KW     = mustKeyword("owned")
	RESTART_KW   = mustKeyword("restart")
	OIDS_KW      = mustKeyword("oids")

	// CREATE VIEW / MATERIALIZED VIEW.
	DATA_KW = mustKeyword("data")

	CONSTRAINTS_KW = mustKeyword("constraints")
	EXCLUDE_KW     = mustKeyword("exclude")
	STORED_KW  = mustKeyword("stored")

	// CREATE TRIGGER / FUNCTION.
	INSTEAD_KW  = mustKeyword("instead")
	BEFORE_KW   = mustKeyword("before")
	AFTER_KW    = mustKeyword("after")
	RETURNS_KW  = mustKeyword("returns")
	LANGUAGE_KW = mustKeyword("language")
	REPLACE_KW  = mustKeyword("replace")
)

func mustKeyword(word string) Kind {
	k, ok := LookupKeyword(word)
	if !ok {
		panic("syntax: unknown keyword " + word)
	}
	return k
}
