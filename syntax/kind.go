// Package syntax defines SyntaxKind, the single enum shared by tokens,
// keywords, and syntax tree nodes across the lexer, parser, and AST
// overlay packages.
package syntax

import "fmt"

// Kind is a discriminated tag shared by every token and every tree node.
// It must fit comfortably in 16 bits; see the block comment below for the
// numeric layout.
type Kind uint16

// Numeric layout:
//
//	0            TOMBSTONE (a Start event not yet completed)
//	1..31        structural / sentinel kinds (EOF, UNKNOWN, ERROR, ...)
//	32..63       trivia
//	64..191      punctuation, raw literal and identifier tokens
//	192..255     synthesized composite tokens (adjacency-sensitive operators)
//	256..895     tree node kinds (non-terminals)
//	896..1023    reserved
//	1024..2047   keyword kinds, assigned dynamically from the keyword table
//	             in keyword order (see keywords_data.go / keywords.go)
const (
	TOMBSTONE Kind = iota

	EOF
	UNKNOWN
	ERROR
	NON_UTF8_ERROR
)

// Trivia.
const (
	WHITESPACE Kind = iota + 32
	COMMENT
)

// Single-character punctuation and raw literal/identifier tokens produced
// directly by the lexer.
const (
	L_PAREN Kind = iota + 64
	R_PAREN
	L_BRACKET
	R_BRACKET
	COMMA
	SEMICOLON
	DOT
	COLON
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	EQ
	LT
	GT
	AMP
	PIPE
	BANG
	TILDE
	QUESTION
	AT_SIGN
	HASH

	// Literals. Flags that spec.md attaches to these kinds (base, empty_int,
	// terminated, ...) are carried alongside the token in LexedStr, not
	// encoded into the Kind itself.
	INT_NUMBER
	FLOAT_NUMBER
	STRING       // '...'
	ESC_STRING   // E'...'
	UNICODE_ESC_STRING
	BYTE_STRING // X'...'
	BIT_STRING  // B'...'
	DOLLAR_QUOTED_STRING

	IDENT
	QUOTED_IDENT
	PARAM // $n

	UNKNOWN_PREFIX
)

// Composite tokens synthesized by the parser from multiple adjacent raw
// tokens. Some require the raw tokens to be "joined" (no intervening
// trivia); see internal/parser for the adjacency table.
const (
	COLON2 Kind = iota + 192 // ::
	COLONEQ                  // :=
	FAT_ARROW                // =>
	NEQ                      // <>
	NEQB                     // !=
	LTEQ                     // <=
	GTEQ                     // >=
	CUSTOM_OP                // greedily consumed operator-char run
	IS_NOT
	IS_DISTINCT_FROM
	IS_NOT_DISTINCT_FROM
	NOT_LIKE
	NOT_ILIKE
	NOT_IN
	NOT_BETWEEN
	SIMILAR_TO
	NOT_SIMILAR_TO
	AT_TIME_ZONE
	OPERATOR_CALL
)

// Tree node kinds (non-terminals).
const (
	SOURCE_FILE Kind = iota + 256

	// Names / paths.
	NAME
	NAME_REF
	PATH
	PATH_SEGMENT

	// Expressions.
	LITERAL
	PAREN_EXPR
	BIN_EXPR
	PREFIX_EXPR
	POSTFIX_EXPR
	CALL_EXPR
	ARG_LIST
	NAMED_ARG
	FIELD_EXPR
	INDEX_EXPR
	SLICE_EXPR
	CAST_EXPR
	CASE_EXPR
	WHEN_CLAUSE
	ELSE_CLAUSE
	BETWEEN_EXPR
	IN_EXPR
	EXISTS_EXPR
	SUBQUERY_EXPR
	ARRAY_EXPR
	ROW_EXPR
	FILTER_CLAUSE
	OVER_CLAUSE
	WINDOW_DEF
	FRAME_CLAUSE
	STAR_EXPR

	// SELECT.
	SELECT_STMT
	WITH_CLAUSE
	CTE
	CTE_LIST
	SELECT_CLAUSE
	SELECT_ITEM
	SELECT_ITEM_LIST
	FROM_CLAUSE
	FROM_ITEM
	JOIN_CLAUSE
	TABLESAMPLE_CLAUSE
	WHERE_CLAUSE
	GROUP_BY_CLAUSE
	GROUPING_ELEMENT
	HAVING_CLAUSE
	WINDOW_CLAUSE
	ORDER_BY_CLAUSE
	ORDER_BY_ITEM
	LIMIT_CLAUSE
	OFFSET_CLAUSE
	FETCH_CLAUSE
	LOCKING_CLAUSE
	SET_OP_SELECT

	// INSERT / UPDATE / DELETE.
	INSERT_STMT
	INSERT_COLUMN_LIST
	VALUES_CLAUSE
	VALUES_ROW
	ON_CONFLICT_CLAUSE
	UPDATE_STMT
	SET_CLAUSE
	SET_CLAUSE_LIST
	DELETE_STMT
	RETURNING_CLAUSE

	// CREATE TABLE.
	CREATE_TABLE_STMT
	TABLE_ELEMENT_LIST
	COLUMN_DEF
	COLUMN_CONSTRAINT
	COLUMN_CONSTRAINT_LIST
	TABLE_CONSTRAINT
	CHECK_CONSTRAINT
	UNIQUE_CONSTRAINT
	PRIMARY_KEY_CONSTRAINT
	FOREIGN_KEY_CONSTRAINT
	NOT_NULL_CONSTRAINT
	NULL_CONSTRAINT
	DEFAULT_CONSTRAINT
	GENERATED_CONSTRAINT
	REFERENCES_CLAUSE
	CONSTRAINT_NAME
	TYPE_NAME
	COLUMN_LIST
	PARTITION_BY_CLAUSE
	INHERITS_CLAUSE

	// ALTER TABLE.
	ALTER_TABLE_STMT
	ADD_COLUMN_ACTION
	DROP_COLUMN_ACTION
	ALTER_COLUMN_ACTION
	ALTER_COLUMN_TYPE_OPTION
	ALTER_COLUMN_SET_NOT_NULL_OPTION
	ALTER_COLUMN_DROP_NOT_NULL_OPTION
	ALTER_COLUMN_SET_DEFAULT_OPTION
	ALTER_COLUMN_DROP_DEFAULT_OPTION
	ADD_CONSTRAINT_ACTION
	DROP_CONSTRAINT_ACTION
	VALIDATE_CONSTRAINT_ACTION
	RENAME_TABLE_ACTION
	RENAME_COLUMN_ACTION
	RENAME_CONSTRAINT_ACTION
	SET_SCHEMA_ACTION
	DROP_TABLE_STMT

	// CREATE/DROP INDEX.
	CREATE_INDEX_STMT
	INDEX_COLUMN_LIST
	INDEX_COLUMN
	INCLUDE_CLAUSE
	USING_METHOD_CLAUSE
	DROP_INDEX_STMT

	// Domain.
	CREATE_DOMAIN_STMT
	ALTER_DOMAIN_STMT

	// Views / sequences / misc CREATE.
	CREATE_VIEW_STMT
	CREATE_MATERIALIZED_VIEW_STMT

	// Transaction control.
	BEGIN_STMT
	COMMIT_STMT
	ROLLBACK_STMT
	SAVEPOINT_STMT
	RELEASE_STMT

	// SET/RESET/SHOW.
	SET_STMT
	RESET_STMT
	SHOW_STMT

	// Generic statement: recognized by leading keyword(s), body preserved
	// losslessly but not structurally decomposed (spec.md SPEC_FULL.md
	// grammar-coverage tier 2).
	GENERIC_STMT
	GENERIC_BODY

	// Error recovery wrapper.
	ERROR_NODE
)

var kindNames = map[Kind]string{
	TOMBSTONE:      "TOMBSTONE",
	EOF:            "EOF",
	UNKNOWN:        "UNKNOWN",
	ERROR:          "ERROR",
	NON_UTF8_ERROR: "NON_UTF8_ERROR",

	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",

	L_PAREN:              "L_PAREN",
	R_PAREN:               "R_PAREN",
	L_BRACKET:             "L_BRACKET",
	R_BRACKET:             "R_BRACKET",
	COMMA:                 "COMMA",
	SEMICOLON:             "SEMICOLON",
	DOT:                   "DOT",
	COLON:                 "COLON",
	PLUS:                  "PLUS",
	MINUS:                 "MINUS",
	STAR:                  "STAR",
	SLASH:                 "SLASH",
	PERCENT:               "PERCENT",
	CARET:                 "CARET",
	EQ:                    "EQ",
	LT:                    "LT",
	GT:                    "GT",
	AMP:                   "AMP",
	PIPE:                  "PIPE",
	BANG:                  "BANG",
	TILDE:                 "TILDE",
	QUESTION:              "QUESTION",
	AT_SIGN:               "AT_SIGN",
	HASH:                  "HASH",
	INT_NUMBER:            "INT_NUMBER",
	FLOAT_NUMBER:          "FLOAT_NUMBER",
	STRING:                "STRING",
	ESC_STRING:            "ESC_STRING",
	UNICODE_ESC_STRING:    "UNICODE_ESC_STRING",
	BYTE_STRING:           "BYTE_STRING",
	BIT_STRING:            "BIT_STRING",
	DOLLAR_QUOTED_STRING:  "DOLLAR_QUOTED_STRING",
	IDENT:                 "IDENT",
	QUOTED_IDENT:          "QUOTED_IDENT",
	PARAM:                 "PARAM",
	UNKNOWN_PREFIX:        "UNKNOWN_PREFIX",

	COLON2:               "COLON2",
	COLONEQ:              "COLONEQ",
	FAT_ARROW:            "FAT_ARROW",
	NEQ:                  "NEQ",
	NEQB:                 "NEQB",
	LTEQ:                 "LTEQ",
	GTEQ:                 "GTEQ",
	CUSTOM_OP:            "CUSTOM_OP",
	IS_NOT:               "IS_NOT",
	IS_DISTINCT_FROM:     "IS_DISTINCT_FROM",
	IS_NOT_DISTINCT_FROM: "IS_NOT_DISTINCT_FROM",
	NOT_LIKE:             "NOT_LIKE",
	NOT_ILIKE:            "NOT_ILIKE",
	NOT_IN:               "NOT_IN",
	NOT_BETWEEN:          "NOT_BETWEEN",
	SIMILAR_TO:           "SIMILAR_TO",
	NOT_SIMILAR_TO:       "NOT_SIMILAR_TO",
	AT_TIME_ZONE:         "AT_TIME_ZONE",
	OPERATOR_CALL:        "OPERATOR_CALL",

	SOURCE_FILE:      "SOURCE_FILE",
	NAME:             "NAME",
	NAME_REF:         "NAME_REF",
	PATH:             "PATH",
	PATH_SEGMENT:     "PATH_SEGMENT",
	LITERAL:          "LITERAL",
	PAREN_EXPR:       "PAREN_EXPR",
	BIN_EXPR:         "BIN_EXPR",
	PREFIX_EXPR:      "PREFIX_EXPR",
	POSTFIX_EXPR:     "POSTFIX_EXPR",
	CALL_EXPR:        "CALL_EXPR",
	ARG_LIST:         "ARG_LIST",
	NAMED_ARG:        "NAMED_ARG",
	FIELD_EXPR:       "FIELD_EXPR",
	INDEX_EXPR:       "INDEX_EXPR",
	SLICE_EXPR:       "SLICE_EXPR",
	CAST_EXPR:        "CAST_EXPR",
	CASE_EXPR:        "CASE_EXPR",
	WHEN_CLAUSE:      "WHEN_CLAUSE",
	ELSE_CLAUSE:      "ELSE_CLAUSE",
	BETWEEN_EXPR:     "BETWEEN_EXPR",
	IN_EXPR:          "IN_EXPR",
	EXISTS_EXPR:      "EXISTS_EXPR",
	SUBQUERY_EXPR:    "SUBQUERY_EXPR",
	ARRAY_EXPR:       "ARRAY_EXPR",
	ROW_EXPR:         "ROW_EXPR",
	FILTER_CLAUSE:    "FILTER_CLAUSE",
	OVER_CLAUSE:      "OVER_CLAUSE",
	WINDOW_DEF:       "WINDOW_DEF",
	FRAME_CLAUSE:     "FRAME_CLAUSE",
	STAR_EXPR:        "STAR_EXPR",

	SELECT_STMT:        "SELECT_STMT",
	WITH_CLAUSE:        "WITH_CLAUSE",
	CTE:                "CTE",
	CTE_LIST:           "CTE_LIST",
	SELECT_CLAUSE:      "SELECT_CLAUSE",
	SELECT_ITEM:        "SELECT_ITEM",
	SELECT_ITEM_LIST:   "SELECT_ITEM_LIST",
	FROM_CLAUSE:        "FROM_CLAUSE",
	FROM_ITEM:          "FROM_ITEM",
	JOIN_CLAUSE:        "JOIN_CLAUSE",
	TABLESAMPLE_CLAUSE: "TABLESAMPLE_CLAUSE",
	WHERE_CLAUSE:       "WHERE_CLAUSE",
	GROUP_BY_CLAUSE:    "GROUP_BY_CLAUSE",
	GROUPING_ELEMENT:   "GROUPING_ELEMENT",
	HAVING_CLAUSE:      "HAVING_CLAUSE",
	WINDOW_CLAUSE:      "WINDOW_CLAUSE",
	ORDER_BY_CLAUSE:    "ORDER_BY_CLAUSE",
	ORDER_BY_ITEM:      "ORDER_BY_ITEM",
	LIMIT_CLAUSE:       "LIMIT_CLAUSE",
	OFFSET_CLAUSE:      "OFFSET_CLAUSE",
	FETCH_CLAUSE:       "FETCH_CLAUSE",
	LOCKING_CLAUSE:     "LOCKING_CLAUSE",
	SET_OP_SELECT:      "SET_OP_SELECT",

	INSERT_STMT:        "INSERT_STMT",
	INSERT_COLUMN_LIST: "INSERT_COLUMN_LIST",
	VALUES_CLAUSE:      "VALUES_CLAUSE",
	VALUES_ROW:         "VALUES_ROW",
	ON_CONFLICT_CLAUSE: "ON_CONFLICT_CLAUSE",
	UPDATE_STMT:        "UPDATE_STMT",
	SET_CLAUSE:         "SET_CLAUSE",
	SET_CLAUSE_LIST:    "SET_CLAUSE_LIST",
	DELETE_STMT:        "DELETE_STMT",
	RETURNING_CLAUSE:   "RETURNING_CLAUSE",

	CREATE_TABLE_STMT:      "CREATE_TABLE_STMT",
	TABLE_ELEMENT_LIST:     "TABLE_ELEMENT_LIST",
	COLUMN_DEF:             "COLUMN_DEF",
	COLUMN_CONSTRAINT:      "COLUMN_CONSTRAINT",
	COLUMN_CONSTRAINT_LIST: "COLUMN_CONSTRAINT_LIST",
	TABLE_CONSTRAINT:       "TABLE_CONSTRAINT",
	CHECK_CONSTRAINT:       "CHECK_CONSTRAINT",
	UNIQUE_CONSTRAINT:      "UNIQUE_CONSTRAINT",
	PRIMARY_KEY_CONSTRAINT: "PRIMARY_KEY_CONSTRAINT",
	FOREIGN_KEY_CONSTRAINT: "FOREIGN_KEY_CONSTRAINT",
	NOT_NULL_CONSTRAINT:    "NOT_NULL_CONSTRAINT",
	NULL_CONSTRAINT:        "NULL_CONSTRAINT",
	DEFAULT_CONSTRAINT:     "DEFAULT_CONSTRAINT",
	GENERATED_CONSTRAINT:   "GENERATED_CONSTRAINT",
	REFERENCES_CLAUSE:      "REFERENCES_CLAUSE",
	CONSTRAINT_NAME:        "CONSTRAINT_NAME",
	TYPE_NAME:              "TYPE_NAME",
	COLUMN_LIST:            "COLUMN_LIST",
	PARTITION_BY_CLAUSE:    "PARTITION_BY_CLAUSE",
	INHERITS_CLAUSE:        "INHERITS_CLAUSE",

	ALTER_TABLE_STMT:                  "ALTER_TABLE_STMT",
	ADD_COLUMN_ACTION:                 "ADD_COLUMN_ACTION",
	DROP_COLUMN_ACTION:                "DROP_COLUMN_ACTION",
	ALTER_COLUMN_ACTION:               "ALTER_COLUMN_ACTION",
	ALTER_COLUMN_TYPE_OPTION:          "ALTER_COLUMN_TYPE_OPTION",
	ALTER_COLUMN_SET_NOT_NULL_OPTION:  "ALTER_COLUMN_SET_NOT_NULL_OPTION",
	ALTER_COLUMN_DROP_NOT_NULL_OPTION: "ALTER_COLUMN_DROP_NOT_NULL_OPTION",
	ALTER_COLUMN_SET_DEFAULT_OPTION:   "ALTER_COLUMN_SET_DEFAULT_OPTION",
	ALTER_COLUMN_DROP_DEFAULT_OPTION:  "ALTER_COLUMN_DROP_DEFAULT_OPTION",
	ADD_CONSTRAINT_ACTION:             "ADD_CONSTRAINT_ACTION",
	DROP_CONSTRAINT_ACTION:            "DROP_CONSTRAINT_ACTION",
	VALIDATE_CONSTRAINT_ACTION:        "VALIDATE_CONSTRAINT_ACTION",
	RENAME_TABLE_ACTION:               "RENAME_TABLE_ACTION",
	RENAME_COLUMN_ACTION:              "RENAME_COLUMN_ACTION",
	RENAME_CONSTRAINT_ACTION:          "RENAME_CONSTRAINT_ACTION",
	SET_SCHEMA_ACTION:                 "SET_SCHEMA_ACTION",
	DROP_TABLE_STMT:                   "DROP_TABLE_STMT",

	CREATE_INDEX_STMT:   "CREATE_INDEX_STMT",
	INDEX_COLUMN_LIST:   "INDEX_COLUMN_LIST",
	INDEX_COLUMN:        "INDEX_COLUMN",
	INCLUDE_CLAUSE:      "INCLUDE_CLAUSE",
	USING_METHOD_CLAUSE: "USING_METHOD_CLAUSE",
	DROP_INDEX_STMT:     "DROP_INDEX_STMT",

	CREATE_DOMAIN_STMT: "CREATE_DOMAIN_STMT",
	ALTER_DOMAIN_STMT:  "ALTER_DOMAIN_STMT",

	CREATE_VIEW_STMT:              "CREATE_VIEW_STMT",
	CREATE_MATERIALIZED_VIEW_STMT: "CREATE_MATERIALIZED_VIEW_STMT",

	BEGIN_STMT:     "BEGIN_STMT",
	COMMIT_STMT:    "COMMIT_STMT",
	ROLLBACK_STMT:  "ROLLBACK_STMT",
	SAVEPOINT_STMT: "SAVEPOINT_STMT",
	RELEASE_STMT:   "RELEASE_STMT",

	SET_STMT:   "SET_STMT",
	RESET_STMT: "RESET_STMT",
	SHOW_STMT:  "SHOW_STMT",

	GENERIC_STMT: "GENERIC_STMT",
	GENERIC_BODY: "GENERIC_BODY",

	ERROR_NODE: "ERROR_NODE",
}

// String returns a readable name for any kind: a keyword's lowercase
// spelling, a named constant's identifier, or a "Kind(n)" fallback.
func (k Kind) String() string {
	if k.IsKeyword() {
		return k.keywordString()
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsTrivia reports whether k is whitespace or a comment.
func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT
}

// IsKeyword reports whether k was assigned from the keyword table.
func (k Kind) IsKeyword() bool {
	return k >= keywordKindBase && k < keywordKindBase+Kind(len(keywordList))
}

// IsToken reports whether k is a terminal (token) kind as opposed to a
// tree node kind.
func (k Kind) IsToken() bool {
	switch {
	case k.IsKeyword():
		return true
	case k == TOMBSTONE || k == EOF || k == UNKNOWN || k == ERROR || k == NON_UTF8_ERROR:
		return true
	case k.IsTrivia():
		return true
	case k >= L_PAREN && k <= UNKNOWN_PREFIX:
		return true
	case k >= COLON2 && k <= OPERATOR_CALL:
		return true
	default:
		return false
	}
}
