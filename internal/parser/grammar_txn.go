package parser

import "github.com/pgsentry/pgsentry/syntax"

// beginStmt parses BEGIN / START TRANSACTION, consuming any transaction
// mode list (ISOLATION LEVEL ..., READ WRITE/ONLY, DEFERRABLE) losslessly
// without decomposing it structurally — the linter's transaction-nesting
// and require-timeout-settings rules only need to know a transaction
// opened here, not its mode.
func beginStmt(p *Parser) {
	m := p.Start()
	if p.Eat(syntax.BEGIN_KW) {
		p.EatAny(syntax.WORK_KW, syntax.TRANSACTION_KW)
	} else {
		p.Expect(syntax.START_KW)
		p.Expect(syntax.TRANSACTION_KW)
	}
	for !p.At(syntax.SEMICOLON) && !p.AtEOF() {
		p.BumpAny()
	}
	m.Complete(syntax.BEGIN_STMT)
}

func commitStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.COMMIT_KW)
	p.EatAny(syntax.WORK_KW, syntax.TRANSACTION_KW)
	m.Complete(syntax.COMMIT_STMT)
}

func rollbackStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.ROLLBACK_KW)
	p.EatAny(syntax.WORK_KW, syntax.TRANSACTION_KW)
	if p.Eat(syntax.TO_KW) {
		p.Eat(syntax.SAVEPOINT_KW)
		nameRef(p)
	}
	m.Complete(syntax.ROLLBACK_STMT)
}

func savepointStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.SAVEPOINT_KW)
	nameRef(p)
	m.Complete(syntax.SAVEPOINT_STMT)
}

func releaseStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.RELEASE_KW)
	p.Eat(syntax.SAVEPOINT_KW)
	nameRef(p)
	m.Complete(syntax.RELEASE_STMT)
}

// setStmt parses SET [SESSION|LOCAL] name {TO|=} value [, value ...] |
// SET name FROM CURRENT | SET TIME ZONE value | SET CONSTRAINTS ...,
// preserving the value list losslessly without typing each GUC's value
// grammar (spec.md doesn't require semantic understanding of arbitrary
// settings; only require-timeout-settings inspects the setting name and a
// specific literal value, handled by the rule via the raw token text).
func setStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.SET_KW)
	p.EatAny(syntax.SESSION_KW, syntax.LOCAL_KW)
	if p.At(syntax.TIME_KW) {
		p.BumpAny()
		p.Expect(syntax.ZONE_KW)
	} else if p.At(syntax.CONSTRAINT_KW) || p.At(syntax.CONSTRAINTS_KW) {
		p.BumpAny()
	} else {
		nameRef(p)
	}
	for !p.At(syntax.SEMICOLON) && !p.AtEOF() {
		p.BumpAny()
	}
	m.Complete(syntax.SET_STMT)
}

func resetStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.RESET_KW)
	for !p.At(syntax.SEMICOLON) && !p.AtEOF() {
		p.BumpAny()
	}
	m.Complete(syntax.RESET_STMT)
}

func showStmt(p *Parser) {
	m := p.Start()
	p.Expect(syntax.SHOW_KW)
	for !p.At(syntax.SEMICOLON) && !p.AtEOF() {
		p.BumpAny()
	}
	m.Complete(syntax.SHOW_STMT)
}
