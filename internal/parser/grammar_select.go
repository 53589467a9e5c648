package parser

import "github.com/pgsentry/pgsentry/syntax"

// selectStmt parses a top-level SELECT (or WITH ... SELECT) statement.
func selectStmt(p *Parser) {
	m := p.Start()
	selectStmtInner(p)
	m.Complete(syntax.SELECT_STMT)
}

// selectStmtInner parses the WITH/SELECT/set-operation body without
// wrapping it in a SELECT_STMT node itself — used both at statement level
// and for subqueries, where the enclosing SUBQUERY_EXPR/PAREN supplies the
// wrapper.
func selectStmtInner(p *Parser) {
	if p.At(syntax.WITH_KW) {
		withClause(p)
	}
	selectCore(p)
	for p.At(syntax.UNION_KW) || p.At(syntax.INTERSECT_KW) || p.At(syntax.EXCEPT_KW) {
		m := p.Start()
		p.BumpAny()
		p.EatAny(syntax.ALL_KW, syntax.DISTINCT_KW)
		selectCore(p)
		m.Complete(syntax.SET_OP_SELECT)
	}
	if p.At(syntax.ORDER_KW) {
		orderByClause(p)
	}
	if p.At(syntax.LIMIT_KW) {
		limitClause(p)
	}
	if p.At(syntax.OFFSET_KW) {
		offsetClause(p)
	}
	if p.At(syntax.FETCH_KW) {
		fetchClause(p)
	}
	for p.At(syntax.FOR_KW) || p.At(syntax.LOCK_KW) {
		lockingClause(p)
	}
}

func withClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.WITH_KW)
	p.Eat(syntax.RECURSIVE_KW)
	cteList(p)
	m.Complete(syntax.WITH_CLAUSE)
}

func cteList(p *Parser) {
	m := p.Start()
	cte(p)
	for p.Eat(syntax.COMMA) {
		cte(p)
	}
	m.Complete(syntax.CTE_LIST)
}

func cte(p *Parser) {
	m := p.Start()
	nameRef(p)
	if p.At(syntax.L_PAREN) {
		p.BumpAny()
		nameRef(p)
		for p.Eat(syntax.COMMA) {
			nameRef(p)
		}
		p.Expect(syntax.R_PAREN)
	}
	p.Expect(syntax.AS_KW)
	p.Eat(syntax.NOT_KW) // NOT MATERIALIZED
	p.Eat(syntax.MATERIALIZED_KW)
	p.Expect(syntax.L_PAREN)
	selectStmtInner(p)
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.CTE)
}

func selectCore(p *Parser) {
	if p.At(syntax.L_PAREN) {
		p.BumpAny()
		selectStmtInner(p)
		p.Expect(syntax.R_PAREN)
		return
	}
	selectClause(p)
	if p.At(syntax.FROM_KW) {
		fromClause(p)
	}
	if p.At(syntax.WHERE_KW) {
		whereClause(p)
	}
	if p.At(syntax.GROUP_KW) {
		groupByClause(p)
	}
	if p.At(syntax.HAVING_KW) {
		havingClause(p)
	}
	if p.At(syntax.WINDOW_KW) {
		windowClause(p)
	}
}

func selectClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.SELECT_KW)
	if p.Eat(syntax.DISTINCT_KW) {
		if p.Eat(syntax.ON_KW) {
			p.Expect(syntax.L_PAREN)
			expr(p)
			for p.Eat(syntax.COMMA) {
				expr(p)
			}
			p.Expect(syntax.R_PAREN)
		}
	} else {
		p.Eat(syntax.ALL_KW)
	}
	selectItemList(p)
	m.Complete(syntax.SELECT_CLAUSE)
}

func selectItemList(p *Parser) {
	m := p.Start()
	selectItem(p)
	for p.Eat(syntax.COMMA) {
		selectItem(p)
	}
	m.Complete(syntax.SELECT_ITEM_LIST)
}

func selectItem(p *Parser) {
	m := p.Start()
	expr(p)
	if p.Eat(syntax.AS_KW) {
		nameRef(p)
	} else if p.At(syntax.IDENT) || p.At(syntax.QUOTED_IDENT) || (p.nth(0).IsKeyword() && p.nth(0).CanBareLabel()) {
		nameRef(p)
	}
	m.Complete(syntax.SELECT_ITEM)
}

func fromClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.FROM_KW)
	fromItem(p)
	for p.Eat(syntax.COMMA) {
		fromItem(p)
	}
	m.Complete(syntax.FROM_CLAUSE)
}

func fromItem(p *Parser) {
	m := p.Start()
	p.Eat(syntax.LATERAL_KW)
	switch {
	case p.At(syntax.L_PAREN):
		p.BumpAny()
		selectStmtInner(p)
		p.Expect(syntax.R_PAREN)
	default:
		nameRef(p)
		for p.At(syntax.DOT) {
			p.BumpAny()
			nameRef(p)
		}
		if p.At(syntax.L_PAREN) {
			argList(p)
		}
	}
	if p.At(syntax.TABLESAMPLE_KW) {
		tablesampleClause(p)
	}
	if p.Eat(syntax.AS_KW) {
		nameRef(p)
	} else if p.At(syntax.IDENT) || p.At(syntax.QUOTED_IDENT) {
		nameRef(p)
	}
	if p.At(syntax.L_PAREN) {
		// column alias list
		p.BumpAny()
		nameRef(p)
		for p.Eat(syntax.COMMA) {
			nameRef(p)
		}
		p.Expect(syntax.R_PAREN)
	}
	m.Complete(syntax.FROM_ITEM)

	for joinKind(p) {
		jm := p.Start()
		joinType(p)
		p.Expect(syntax.JOIN_KW)
		fromItem(p)
		if p.Eat(syntax.ON_KW) {
			expr(p)
		} else if p.Eat(syntax.USING_KW) {
			p.Expect(syntax.L_PAREN)
			nameRef(p)
			for p.Eat(syntax.COMMA) {
				nameRef(p)
			}
			p.Expect(syntax.R_PAREN)
		}
		jm.Complete(syntax.JOIN_CLAUSE)
	}
}

func joinKind(p *Parser) bool {
	return p.At(syntax.JOIN_KW) || p.At(syntax.LEFT_KW) || p.At(syntax.RIGHT_KW) ||
		p.At(syntax.FULL_KW) || p.At(syntax.INNER_KW) || p.At(syntax.CROSS_KW) || p.At(syntax.NATURAL_KW)
}

func joinType(p *Parser) {
	p.Eat(syntax.NATURAL_KW)
	switch {
	case p.Eat(syntax.LEFT_KW), p.Eat(syntax.RIGHT_KW), p.Eat(syntax.FULL_KW):
		p.Eat(syntax.OUTER_KW)
	case p.Eat(syntax.INNER_KW):
	case p.Eat(syntax.CROSS_KW):
	}
}

func tablesampleClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.TABLESAMPLE_KW)
	nameRef(p)
	p.Expect(syntax.L_PAREN)
	expr(p)
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.TABLESAMPLE_CLAUSE)
}

func whereClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.WHERE_KW)
	expr(p)
	m.Complete(syntax.WHERE_CLAUSE)
}

func groupByClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.GROUP_KW)
	p.Expect(syntax.BY_KW)
	p.EatAny(syntax.ALL_KW, syntax.DISTINCT_KW)
	groupingElement(p)
	for p.Eat(syntax.COMMA) {
		groupingElement(p)
	}
	m.Complete(syntax.GROUP_BY_CLAUSE)
}

func groupingElement(p *Parser) {
	m := p.Start()
	switch {
	case p.Eat(syntax.ROLLUP_KW), p.Eat(syntax.CUBE_KW):
		p.Expect(syntax.L_PAREN)
		expr(p)
		for p.Eat(syntax.COMMA) {
			expr(p)
		}
		p.Expect(syntax.R_PAREN)
	case p.At(syntax.GROUPING_KW) && p.nth(1) == syntax.SETS_KW:
		p.BumpAny()
		p.BumpAny()
		p.Expect(syntax.L_PAREN)
		groupingElement(p)
		for p.Eat(syntax.COMMA) {
			groupingElement(p)
		}
		p.Expect(syntax.R_PAREN)
	case p.At(syntax.L_PAREN) && p.nth(1) == syntax.R_PAREN:
		p.BumpAny()
		p.BumpAny()
	default:
		expr(p)
	}
	m.Complete(syntax.GROUPING_ELEMENT)
}

func havingClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.HAVING_KW)
	expr(p)
	m.Complete(syntax.HAVING_CLAUSE)
}

func windowClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.WINDOW_KW)
	nameRef(p)
	p.Expect(syntax.AS_KW)
	windowDef(p)
	for p.Eat(syntax.COMMA) {
		nameRef(p)
		p.Expect(syntax.AS_KW)
		windowDef(p)
	}
	m.Complete(syntax.WINDOW_CLAUSE)
}

func orderByClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.ORDER_KW)
	p.Expect(syntax.BY_KW)
	orderByItem(p)
	for p.Eat(syntax.COMMA) {
		orderByItem(p)
	}
	m.Complete(syntax.ORDER_BY_CLAUSE)
}

func orderByItem(p *Parser) {
	m := p.Start()
	expr(p)
	if p.Eat(syntax.ASC_KW) || p.Eat(syntax.DESC_KW) {
	} else if p.Eat(syntax.USING_KW) {
		operatorRef(p)
	}
	if p.Eat(syntax.NULLS_KW) {
		p.EatAny(syntax.FIRST_KW, syntax.LAST_KW)
	}
	m.Complete(syntax.ORDER_BY_ITEM)
}

func operatorRef(p *Parser) {
	switch {
	case p.At(syntax.CUSTOM_OP):
		p.BumpCustomOp()
	default:
		p.BumpAny()
	}
}

func limitClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.LIMIT_KW)
	if !p.Eat(syntax.ALL_KW) {
		expr(p)
	}
	m.Complete(syntax.LIMIT_CLAUSE)
}

func offsetClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.OFFSET_KW)
	expr(p)
	p.EatAny(syntax.ROW_KW, syntax.ROWS_KW)
	m.Complete(syntax.OFFSET_CLAUSE)
}

func fetchClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.FETCH_KW)
	p.EatAny(syntax.FIRST_KW, syntax.NEXT_KW)
	if !p.At(syntax.ROW_KW) && !p.At(syntax.ROWS_KW) {
		expr(p)
	}
	p.EatAny(syntax.ROW_KW, syntax.ROWS_KW)
	p.Expect(syntax.ONLY_KW)
	m.Complete(syntax.FETCH_CLAUSE)
}

func lockingClause(p *Parser) {
	m := p.Start()
	if p.Eat(syntax.FOR_KW) {
		p.EatAny(syntax.UPDATE_KW, syntax.NO_KW, syntax.SHARE_KW, syntax.KEY_KW)
		if p.Eat(syntax.OF_KW) {
			nameRef(p)
			for p.Eat(syntax.COMMA) {
				nameRef(p)
			}
		}
		p.EatAny(syntax.NOWAIT_KW, syntax.SKIP_KW)
	} else {
		p.Expect(syntax.LOCK_KW)
	}
	m.Complete(syntax.LOCKING_CLAUSE)
}
