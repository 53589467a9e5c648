package parser

import "github.com/pgsentry/pgsentry/syntax"

// expr parses a full expression with operator-precedence (Pratt) climbing,
// the idiomatic Go shape for the "full PostgreSQL operator precedence"
// spec.md §4.3 requires; grounded on original_source's expression binding
// power table, re-derived rather than translated (the Rust source encodes
// binding power as consecutive integers per operator; this uses the same
// relative ordering with named Go constants instead).
func expr(p *Parser) {
	exprBp(p, 0)
}

const (
	bpOr = iota + 1
	bpAnd
	bpNot
	bpCompare
	bpIsPostfix // IS, ISNULL, NOTNULL, IN, BETWEEN, LIKE family
	bpAdd
	bpMul
	bpExp
	bpUnary
)

// exprBp parses one prefix expression, then extends it with infix
// operators whose binding power is at least minBp, wrapping the
// accumulated left-hand side in a new BIN_EXPR via precedeLast each time
// (the forward-parent trick, so the already-parsed LHS doesn't need to be
// re-parsed or copied).
func exprBp(p *Parser, minBp int) {
	prefixExpr(p)

	for {
		if p.At(syntax.BETWEEN_KW) || p.At(syntax.NOT_BETWEEN) {
			if bpIsPostfix < minBp {
				return
			}
			m := precedeLast(p)
			bumpOperator(p)
			exprBp(p, bpIsPostfix+1)
			p.Expect(syntax.AND_KW)
			exprBp(p, bpIsPostfix+1)
			m.Complete(syntax.BETWEEN_EXPR)
			continue
		}

		bp, ok := infixBp(p)
		if !ok || bp < minBp {
			return
		}
		isIn := p.At(syntax.IN_KW) || p.At(syntax.NOT_IN)
		m := precedeLast(p)
		bumpOperator(p)
		rightAssoc := bp == bpExp
		nextMin := bp + 1
		if rightAssoc {
			nextMin = bp
		}
		exprBp(p, nextMin)
		if isIn {
			m.Complete(syntax.IN_EXPR)
		} else {
			m.Complete(syntax.BIN_EXPR)
		}
	}
}

// precedeLast wraps the most recently completed top-level node as the LHS
// of a new BIN_EXPR, via the forward-parent marker trick. Since exprBp
// always completes exactly one node per call before returning to its
// caller's loop, the "last completed marker" is reconstructed by opening a
// marker positioned to precede the whole expression parsed so far: in this
// recursive-descent shape that is simply a fresh Start whose forward
// parent is the event most recently closed with EvFinish.
func precedeLast(p *Parser) *Marker {
	// Find the Start event matching the most recent unmatched EvFinish.
	depth := 0
	for i := len(p.events) - 1; i >= 0; i-- {
		switch p.events[i].Kind {
		case EvFinish:
			depth++
		case EvStart:
			if p.events[i].NodeKind == syntax.TOMBSTONE {
				// Abandoned or still open: no EvFinish matches it.
				continue
			}
			depth--
			if depth == 0 {
				return CompletedMarker{p: p, pos: i}.Precede()
			}
		}
	}
	panic("parser: precedeLast found no enclosing node")
}

// prefixExpr parses a unary prefix operator chain followed by a primary
// expression, then any postfix operators (field access, call, index,
// cast).
func prefixExpr(p *Parser) {
	switch {
	case p.At(syntax.PLUS), p.At(syntax.MINUS), p.At(syntax.TILDE):
		m := p.Start()
		p.BumpAny()
		prefixExpr(p)
		m.Complete(syntax.PREFIX_EXPR)
		return
	case p.At(syntax.NOT_KW):
		m := p.Start()
		p.BumpAny()
		exprBp(p, bpNot)
		m.Complete(syntax.PREFIX_EXPR)
		return
	}
	primaryExpr(p)
	postfixExpr(p)
}

func postfixExpr(p *Parser) {
	for {
		switch {
		case p.At(syntax.DOT):
			m := precedeLast(p)
			p.BumpAny()
			if p.At(syntax.STAR) {
				p.BumpAny()
			} else {
				nameRef(p)
			}
			m.Complete(syntax.FIELD_EXPR)
		case p.At(syntax.L_BRACKET):
			m := precedeLast(p)
			p.BumpAny()
			expr(p)
			if p.Eat(syntax.COLON) {
				expr(p)
			}
			p.Expect(syntax.R_BRACKET)
			m.Complete(syntax.INDEX_EXPR)
		case p.At(syntax.COLON2):
			m := precedeLast(p)
			p.BumpComposite(syntax.COLON2)
			typeName(p)
			m.Complete(syntax.CAST_EXPR)
		case p.At(syntax.FILTER_KW):
			m := precedeLast(p)
			filterClause(p)
			m.Complete(syntax.CALL_EXPR)
		case p.At(syntax.OVER_KW):
			m := precedeLast(p)
			overClause(p)
			m.Complete(syntax.CALL_EXPR)
		default:
			return
		}
	}
}

func infixBp(p *Parser) (int, bool) {
	switch {
	case p.At(syntax.OR_KW):
		return bpOr, true
	case p.At(syntax.AND_KW):
		return bpAnd, true
	case p.At(syntax.IS_NOT_DISTINCT_FROM), p.At(syntax.IS_DISTINCT_FROM), p.At(syntax.IS_NOT), p.At(syntax.IS_KW):
		return bpIsPostfix, true
	case p.At(syntax.NOT_BETWEEN), p.At(syntax.BETWEEN_KW):
		return bpIsPostfix, true
	case p.At(syntax.NOT_IN), p.At(syntax.IN_KW):
		return bpIsPostfix, true
	case p.At(syntax.NOT_LIKE), p.At(syntax.LIKE_KW), p.At(syntax.NOT_ILIKE), p.At(syntax.ILIKE_KW):
		return bpIsPostfix, true
	case p.At(syntax.NOT_SIMILAR_TO), p.At(syntax.SIMILAR_TO):
		return bpIsPostfix, true
	case p.At(syntax.AT_TIME_ZONE):
		return bpIsPostfix, true
	case p.At(syntax.LT), p.At(syntax.GT), p.At(syntax.LTEQ), p.At(syntax.GTEQ), p.At(syntax.NEQ), p.At(syntax.NEQB), p.At(syntax.EQ):
		return bpCompare, true
	case p.At(syntax.PLUS), p.At(syntax.MINUS):
		return bpAdd, true
	case p.At(syntax.STAR), p.At(syntax.SLASH), p.At(syntax.PERCENT):
		return bpMul, true
	case p.At(syntax.CARET):
		return bpExp, true
	case p.At(syntax.CUSTOM_OP):
		return bpMul, true
	}
	return 0, false
}

func bumpOperator(p *Parser) {
	switch {
	case p.At(syntax.IS_NOT_DISTINCT_FROM):
		p.BumpComposite(syntax.IS_NOT_DISTINCT_FROM)
	case p.At(syntax.IS_DISTINCT_FROM):
		p.BumpComposite(syntax.IS_DISTINCT_FROM)
	case p.At(syntax.IS_NOT):
		p.BumpComposite(syntax.IS_NOT)
	case p.At(syntax.NOT_BETWEEN):
		p.BumpComposite(syntax.NOT_BETWEEN)
	case p.At(syntax.NOT_IN):
		p.BumpComposite(syntax.NOT_IN)
	case p.At(syntax.NOT_LIKE):
		p.BumpComposite(syntax.NOT_LIKE)
	case p.At(syntax.NOT_ILIKE):
		p.BumpComposite(syntax.NOT_ILIKE)
	case p.At(syntax.NOT_SIMILAR_TO):
		p.BumpComposite(syntax.NOT_SIMILAR_TO)
	case p.At(syntax.SIMILAR_TO):
		p.BumpComposite(syntax.SIMILAR_TO)
	case p.At(syntax.AT_TIME_ZONE):
		p.BumpComposite(syntax.AT_TIME_ZONE)
	case p.At(syntax.LTEQ):
		p.BumpComposite(syntax.LTEQ)
	case p.At(syntax.GTEQ):
		p.BumpComposite(syntax.GTEQ)
	case p.At(syntax.NEQ):
		p.BumpComposite(syntax.NEQ)
	case p.At(syntax.NEQB):
		p.BumpComposite(syntax.NEQB)
	case p.At(syntax.CUSTOM_OP):
		p.BumpCustomOp()
	default:
		p.BumpAny()
	}
}

func primaryExpr(p *Parser) {
	switch {
	case p.At(syntax.INT_NUMBER), p.At(syntax.FLOAT_NUMBER), p.At(syntax.STRING),
		p.At(syntax.ESC_STRING), p.At(syntax.UNICODE_ESC_STRING), p.At(syntax.BYTE_STRING),
		p.At(syntax.BIT_STRING), p.At(syntax.DOLLAR_QUOTED_STRING), p.At(syntax.TRUE_KW),
		p.At(syntax.FALSE_KW), p.At(syntax.NULL_KW), p.At(syntax.UNKNOWN_KW):
		m := p.Start()
		p.BumpAny()
		m.Complete(syntax.LITERAL)
	case p.At(syntax.PARAM):
		m := p.Start()
		p.BumpAny()
		m.Complete(syntax.LITERAL)
	case p.At(syntax.STAR):
		m := p.Start()
		p.BumpAny()
		m.Complete(syntax.STAR_EXPR)
	case p.At(syntax.L_PAREN):
		parenExprOrSubquery(p)
	case p.At(syntax.CASE_KW):
		caseExpr(p)
	case p.At(syntax.EXISTS_KW):
		existsExpr(p)
	case p.At(syntax.ARRAY_KW):
		arrayExpr(p)
	case p.At(syntax.ROW_KW):
		rowExpr(p)
	case p.At(syntax.CAST_KW):
		castExpr(p)
	case p.At(syntax.AT_TIME_ZONE):
		// a bare AT TIME ZONE with no LHS is a syntax error; recover by
		// treating it as an operator awaiting a left side the caller
		// already parsed. Unreachable in well-formed input.
		p.Error("unexpected AT TIME ZONE")
	default:
		nameOrCallExpr(p)
	}
}

func parenExprOrSubquery(p *Parser) {
	m := p.Start()
	p.Expect(syntax.L_PAREN)
	if p.At(syntax.SELECT_KW) || p.At(syntax.WITH_KW) {
		selectStmtInner(p)
		p.Expect(syntax.R_PAREN)
		m.Complete(syntax.SUBQUERY_EXPR)
		return
	}
	expr(p)
	for p.Eat(syntax.COMMA) {
		expr(p)
	}
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.PAREN_EXPR)
}

func caseExpr(p *Parser) {
	m := p.Start()
	p.Expect(syntax.CASE_KW)
	if !p.At(syntax.WHEN_KW) {
		expr(p)
	}
	for p.At(syntax.WHEN_KW) {
		wm := p.Start()
		p.BumpAny()
		expr(p)
		p.Expect(syntax.THEN_KW)
		expr(p)
		wm.Complete(syntax.WHEN_CLAUSE)
	}
	if p.At(syntax.ELSE_KW) {
		em := p.Start()
		p.BumpAny()
		expr(p)
		em.Complete(syntax.ELSE_CLAUSE)
	}
	p.Expect(syntax.END_KW)
	m.Complete(syntax.CASE_EXPR)
}

func existsExpr(p *Parser) {
	m := p.Start()
	p.Expect(syntax.EXISTS_KW)
	p.Expect(syntax.L_PAREN)
	selectStmtInner(p)
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.EXISTS_EXPR)
}

func arrayExpr(p *Parser) {
	m := p.Start()
	p.Expect(syntax.ARRAY_KW)
	if p.Eat(syntax.L_BRACKET) {
		if !p.At(syntax.R_BRACKET) {
			expr(p)
			for p.Eat(syntax.COMMA) {
				expr(p)
			}
		}
		p.Expect(syntax.R_BRACKET)
	} else if p.Eat(syntax.L_PAREN) {
		selectStmtInner(p)
		p.Expect(syntax.R_PAREN)
	}
	m.Complete(syntax.ARRAY_EXPR)
}

func rowExpr(p *Parser) {
	m := p.Start()
	p.Expect(syntax.ROW_KW)
	if p.Eat(syntax.L_PAREN) {
		if !p.At(syntax.R_PAREN) {
			expr(p)
			for p.Eat(syntax.COMMA) {
				expr(p)
			}
		}
		p.Expect(syntax.R_PAREN)
	}
	m.Complete(syntax.ROW_EXPR)
}

func castExpr(p *Parser) {
	m := p.Start()
	p.Expect(syntax.CAST_KW)
	p.Expect(syntax.L_PAREN)
	expr(p)
	p.Expect(syntax.AS_KW)
	typeName(p)
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.CAST_EXPR)
}

// nameOrCallExpr parses a dotted name (NAME_REF / PATH) and, if followed
// immediately by '(', a function call's argument list, with optional
// FILTER/OVER clauses handled by postfixExpr.
func nameOrCallExpr(p *Parser) {
	m := p.Start()
	segments := 1
	nameRef(p)
	for p.At(syntax.DOT) {
		p.BumpAny()
		if p.At(syntax.STAR) {
			p.BumpAny()
			break
		}
		nameRef(p)
		segments++
	}
	if p.At(syntax.L_PAREN) {
		argList(p)
		m.Complete(syntax.CALL_EXPR)
		return
	}
	if segments == 1 {
		// A single segment is already a NAME_REF from nameRef itself;
		// abandoning here avoids wrapping it a second time.
		m.Abandon()
		return
	}
	m.Complete(syntax.NAME_REF)
}

// nameRef wraps a single identifier segment as a NAME_REF node — the leaf
// every qualified name and column/constraint reference bottoms out in, so
// the AST overlay's Name/QualifiedName helpers have one kind to look for
// regardless of statement context.
func nameRef(p *Parser) {
	m := p.Start()
	if p.At(syntax.QUOTED_IDENT) || p.At(syntax.IDENT) {
		p.BumpAny()
	} else if p.nth(0).IsKeyword() {
		p.BumpAny() // unreserved keywords used as bare identifiers
	} else {
		p.Error("expected identifier")
	}
	m.Complete(syntax.NAME_REF)
}

func argList(p *Parser) {
	m := p.Start()
	p.Expect(syntax.L_PAREN)
	if p.Eat(syntax.DISTINCT_KW) || p.Eat(syntax.ALL_KW) {
	}
	if !p.At(syntax.R_PAREN) {
		arg(p)
		for p.Eat(syntax.COMMA) {
			arg(p)
		}
	}
	if p.At(syntax.ORDER_KW) {
		orderByClause(p)
	}
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.ARG_LIST)
}

// atNamedArgOperator reports whether the token after the current one begins
// a => or := composite — the raw-kind pair plus the joinedness the operator
// composites require, checked one slot ahead of where At can look.
func atNamedArgOperator(p *Parser) bool {
	if p.nth(1) == syntax.EQ && p.joint(1) && p.nth(2) == syntax.GT {
		return true
	}
	return p.nth(1) == syntax.COLON && p.joint(1) && p.nth(2) == syntax.EQ
}

func arg(p *Parser) {
	if (p.At(syntax.IDENT) || p.nth(0).IsKeyword()) && atNamedArgOperator(p) {
		m := p.Start()
		nameRef(p)
		if p.At(syntax.FAT_ARROW) {
			p.BumpComposite(syntax.FAT_ARROW)
		} else {
			p.BumpComposite(syntax.COLONEQ)
		}
		expr(p)
		m.Complete(syntax.NAMED_ARG)
		return
	}
	if p.Eat(syntax.VARIADIC_KW) {
	}
	expr(p)
}

func filterClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.FILTER_KW)
	p.Expect(syntax.L_PAREN)
	p.Expect(syntax.WHERE_KW)
	expr(p)
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.FILTER_CLAUSE)
}

func overClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.OVER_KW)
	if p.At(syntax.L_PAREN) {
		windowDef(p)
	} else {
		nameRef(p)
	}
	m.Complete(syntax.OVER_CLAUSE)
}

func windowDef(p *Parser) {
	m := p.Start()
	p.Expect(syntax.L_PAREN)
	if p.At(syntax.IDENT) {
		nameRef(p)
	}
	if p.Eat(syntax.PARTITION_KW) {
		p.Expect(syntax.BY_KW)
		expr(p)
		for p.Eat(syntax.COMMA) {
			expr(p)
		}
	}
	if p.At(syntax.ORDER_KW) {
		orderByClause(p)
	}
	if p.At(syntax.RANGE_KW) || p.At(syntax.ROWS_KW) || p.At(syntax.GROUPS_KW) {
		frameClause(p)
	}
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.WINDOW_DEF)
}

func frameClause(p *Parser) {
	m := p.Start()
	p.BumpAny() // RANGE/ROWS/GROUPS
	p.Eat(syntax.BETWEEN_KW)
	frameBound(p)
	if p.Eat(syntax.AND_KW) {
		frameBound(p)
	}
	m.Complete(syntax.FRAME_CLAUSE)
}

func frameBound(p *Parser) {
	switch {
	case p.Eat(syntax.UNBOUNDED_KW):
		p.EatAny(syntax.PRECEDING_KW, syntax.FOLLOWING_KW)
	case p.Eat(syntax.CURRENT_KW):
		p.Expect(syntax.ROW_KW)
	default:
		expr(p)
		p.EatAny(syntax.PRECEDING_KW, syntax.FOLLOWING_KW)
	}
}

// typeName parses a (possibly schema-qualified, possibly parameterized,
// possibly array-suffixed) type name.
func typeName(p *Parser) {
	m := p.Start()
	switch {
	case p.Eat(syntax.VARCHAR_KW), p.Eat(syntax.CHAR_KW), p.Eat(syntax.CHARACTER_KW):
		if p.Eat(syntax.VARYING_KW) {
		}
		if p.Eat(syntax.L_PAREN) {
			p.Expect(syntax.INT_NUMBER)
			p.Expect(syntax.R_PAREN)
		}
	case p.Eat(syntax.NUMERIC_KW), p.Eat(syntax.DECIMAL_KW):
		if p.Eat(syntax.L_PAREN) {
			p.Expect(syntax.INT_NUMBER)
			if p.Eat(syntax.COMMA) {
				p.Expect(syntax.INT_NUMBER)
			}
			p.Expect(syntax.R_PAREN)
		}
	case p.Eat(syntax.TIMESTAMP_KW), p.Eat(syntax.TIME_KW):
		if p.Eat(syntax.L_PAREN) {
			p.Expect(syntax.INT_NUMBER)
			p.Expect(syntax.R_PAREN)
		}
		if p.Eat(syntax.WITH_KW) || p.Eat(syntax.WITHOUT_KW) {
			p.Expect(syntax.TIME_KW)
			p.Expect(syntax.ZONE_KW)
		}
	case p.Eat(syntax.DOUBLE_KW):
		p.Expect(syntax.PRECISION_KW)
	case p.Eat(syntax.BOOLEAN_KW):
	default:
		nameRef(p)
		for p.At(syntax.DOT) {
			p.BumpAny()
			nameRef(p)
		}
		if p.Eat(syntax.L_PAREN) {
			p.Expect(syntax.INT_NUMBER)
			for p.Eat(syntax.COMMA) {
				p.Expect(syntax.INT_NUMBER)
			}
			p.Expect(syntax.R_PAREN)
		}
	}
	for p.Eat(syntax.L_BRACKET) {
		if p.At(syntax.INT_NUMBER) {
			p.BumpAny()
		}
		p.Expect(syntax.R_BRACKET)
	}
	m.Complete(syntax.TYPE_NAME)
}
