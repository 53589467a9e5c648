package parser

import "github.com/pgsentry/pgsentry/syntax"

func insertStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.INSERT_KW)
	p.Expect(syntax.INTO_KW)
	nameRef(p)
	for p.At(syntax.DOT) {
		p.BumpAny()
		nameRef(p)
	}
	if p.At(syntax.L_PAREN) {
		insertColumnList(p)
	}
	if p.Eat(syntax.OVERRIDING_KW) {
		p.EatAny(syntax.SYSTEM_KW, syntax.USER_KW)
		p.Expect(syntax.VALUE_KW)
	}
	switch {
	case p.At(syntax.VALUES_KW):
		valuesClause(p)
	case p.At(syntax.SELECT_KW), p.At(syntax.WITH_KW):
		selectStmtInner(p)
	case p.At(syntax.DEFAULT_KW):
		p.BumpAny()
		p.Expect(syntax.VALUES_KW)
	}
	if p.At(syntax.ON_KW) {
		onConflictClause(p)
	}
	if p.At(syntax.RETURNING_KW) {
		returningClause(p)
	}
	m.Complete(syntax.INSERT_STMT)
}

func insertColumnList(p *Parser) {
	m := p.Start()
	p.Expect(syntax.L_PAREN)
	nameRef(p)
	for p.Eat(syntax.COMMA) {
		nameRef(p)
	}
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.INSERT_COLUMN_LIST)
}

func valuesClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.VALUES_KW)
	valuesRow(p)
	for p.Eat(syntax.COMMA) {
		valuesRow(p)
	}
	m.Complete(syntax.VALUES_CLAUSE)
}

func valuesRow(p *Parser) {
	m := p.Start()
	p.Expect(syntax.L_PAREN)
	if !p.At(syntax.R_PAREN) {
		valuesItem(p)
		for p.Eat(syntax.COMMA) {
			valuesItem(p)
		}
	}
	p.Expect(syntax.R_PAREN)
	m.Complete(syntax.VALUES_ROW)
}

func valuesItem(p *Parser) {
	if p.Eat(syntax.DEFAULT_KW) {
		return
	}
	expr(p)
}

func onConflictClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.ON_KW)
	p.Expect(syntax.CONFLICT_KW)
	if p.At(syntax.L_PAREN) {
		p.BumpAny()
		indexColumnList(p)
		p.Expect(syntax.R_PAREN)
		if p.At(syntax.WHERE_KW) {
			whereClause(p)
		}
	} else if p.Eat(syntax.ON_KW) {
		p.Expect(syntax.CONSTRAINT_KW)
		nameRef(p)
	}
	p.Expect(syntax.DO_KW)
	if p.Eat(syntax.NOTHING_KW) {
	} else {
		p.Expect(syntax.UPDATE_KW)
		setClauseList(p)
		if p.At(syntax.WHERE_KW) {
			whereClause(p)
		}
	}
	m.Complete(syntax.ON_CONFLICT_CLAUSE)
}

func indexColumnList(p *Parser) {
	m := p.Start()
	nameRef(p)
	for p.Eat(syntax.COMMA) {
		nameRef(p)
	}
	m.Complete(syntax.INDEX_COLUMN_LIST)
}

func updateStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.UPDATE_KW)
	nameRef(p)
	for p.At(syntax.DOT) {
		p.BumpAny()
		nameRef(p)
	}
	if p.Eat(syntax.AS_KW) {
		nameRef(p)
	} else if p.At(syntax.IDENT) {
		nameRef(p)
	}
	p.Expect(syntax.SET_KW)
	setClauseList(p)
	if p.At(syntax.FROM_KW) {
		fromClause(p)
	}
	if p.At(syntax.WHERE_KW) {
		whereClause(p)
	}
	if p.At(syntax.RETURNING_KW) {
		returningClause(p)
	}
	m.Complete(syntax.UPDATE_STMT)
}

func setClauseList(p *Parser) {
	m := p.Start()
	setClause(p)
	for p.Eat(syntax.COMMA) {
		setClause(p)
	}
	m.Complete(syntax.SET_CLAUSE_LIST)
}

func setClause(p *Parser) {
	m := p.Start()
	if p.Eat(syntax.L_PAREN) {
		nameRef(p)
		for p.Eat(syntax.COMMA) {
			nameRef(p)
		}
		p.Expect(syntax.R_PAREN)
	} else {
		nameRef(p)
	}
	p.Expect(syntax.EQ)
	if p.At(syntax.L_PAREN) {
		parenExprOrSubquery(p)
	} else if p.Eat(syntax.DEFAULT_KW) {
	} else {
		expr(p)
	}
	m.Complete(syntax.SET_CLAUSE)
}

func deleteStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.DELETE_KW)
	p.Expect(syntax.FROM_KW)
	nameRef(p)
	for p.At(syntax.DOT) {
		p.BumpAny()
		nameRef(p)
	}
	if p.Eat(syntax.AS_KW) {
		nameRef(p)
	} else if p.At(syntax.IDENT) {
		nameRef(p)
	}
	if p.At(syntax.USING_KW) {
		um := p.Start()
		p.BumpAny()
		fromItem(p)
		for p.Eat(syntax.COMMA) {
			fromItem(p)
		}
		um.Complete(syntax.FROM_CLAUSE)
	}
	if p.At(syntax.WHERE_KW) {
		whereClause(p)
	}
	if p.At(syntax.RETURNING_KW) {
		returningClause(p)
	}
	m.Complete(syntax.DELETE_STMT)
}

func returningClause(p *Parser) {
	m := p.Start()
	p.Expect(syntax.RETURNING_KW)
	selectItemList(p)
	m.Complete(syntax.RETURNING_CLAUSE)
}
