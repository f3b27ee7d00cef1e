// Package lang is a small, self-contained lexer for the identifier, atom,
// and operator vocabulary of the ML/Erlang-family language the elixir
// package classifies cursors for. It knows nothing about cursors or
// completion. It answers two narrow questions: "is this whole string one
// valid token, and what kind" and "what unary/binary operators exist".
//
// The lexer implements lexer.Definition and lexer.Lexer from
// github.com/alecthomas/participle/v2/lexer and produces positioned
// lexer.Token values, so participle-built parsers and position-aware
// tooling can consume it directly. It is deliberately independent of the
// elixir package so it can be reused (or swapped) without pulling in the
// classifier; the classifier talks to it only through its pluggable
// tokenizer interfaces.
package lang

import (
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	TokenEOF        lexer.TokenType = lexer.EOF
	TokenWhitespace lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	TokenIdent                                    // lowercase/underscore-led names
	TokenAlias                                    // capitalized namespace segments
	TokenAtom                                     // reserved literals, :name, :op, ...
	TokenNumber                                   // digit runs
	TokenOp                                       // recognized unary/binary operators
	TokenDot                                      // .
	TokenPunct                                    // , ; ( ) [ ] { }
)

// reservedAtoms are literal atoms written without a leading colon.
var reservedAtoms = map[string]bool{
	"true":  true,
	"false": true,
	"nil":   true,
}

// reservedOperatorAtoms are atom-like literals spelled entirely from
// operator characters, e.g. the "..." placeholder atom some languages in
// this family allow as a value.
var reservedOperatorAtoms = map[string]bool{
	"...": true,
}

// Lexer errors.
var (
	ErrUnexpectedCharacter = &LexError{msg: "unexpected character"}
	ErrUnknownOperator     = &LexError{msg: "unknown operator"}
	ErrBareColon           = &LexError{msg: "colon without atom name"}
)

// LexError represents a lexer error with position.
type LexError struct {
	msg  string
	pos  lexer.Position
	text string
}

func (e *LexError) Error() string {
	if e.text != "" {
		return e.pos.String() + ": " + e.msg + ": " + e.text
	}

	return e.pos.String() + ": " + e.msg
}

func (e *LexError) withPos(pos lexer.Position) *LexError {
	return &LexError{msg: e.msg, pos: pos, text: e.text}
}

func (e *LexError) withText(text string) *LexError {
	return &LexError{msg: e.msg, pos: e.pos, text: text}
}

// langDefinition implements lexer.Definition for the language's token
// vocabulary.
type langDefinition struct {
	symbols map[string]lexer.TokenType
}

func newLangLexer() *langDefinition {
	return &langDefinition{
		symbols: map[string]lexer.TokenType{
			"EOF":        TokenEOF,
			"Whitespace": TokenWhitespace,
			"Ident":      TokenIdent,
			"Alias":      TokenAlias,
			"Atom":       TokenAtom,
			"Number":     TokenNumber,
			"Op":         TokenOp,
			"Dot":        TokenDot,
			"Punct":      TokenPunct,
		},
	}
}

var defaultLexer = newLangLexer()

// Lexer returns the lexer definition for the language, for participle
// parser composition and for tests.
//
//nolint:revive // unexported-return: intentionally returns unexported type
func Lexer() *langDefinition {
	return defaultLexer
}

// Symbols returns the mapping of symbol names to token types.
func (d *langDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex creates a new Lexer for the given reader.
//
//nolint:ireturn // Required by participle's lexer.Definition interface.
func (d *langDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return d.LexString(filename, string(data))
}

// LexString implements lexer.StringDefinition for efficiency.
//
//nolint:ireturn // Required by participle's lexer.StringDefinition interface.
func (d *langDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	return newLexerState(filename, input), nil
}

// lexerState holds the state for lexing.
type lexerState struct {
	filename string
	input    string
	offset   int
	line     int
	col      int
}

func newLexerState(filename, input string) *lexerState {
	return &lexerState{
		filename: filename,
		input:    input,
		offset:   0,
		line:     1,
		col:      1,
	}
}

// Next returns the next token.
func (l *lexerState) Next() (lexer.Token, error) {
	if l.eof() {
		return lexer.EOFToken(l.pos()), nil
	}

	start := l.pos()
	r := l.peek()

	if isSpace(r) {
		for !l.eof() && isSpace(l.peek()) {
			l.advance()
		}

		return l.token(TokenWhitespace, start), nil
	}

	if isDigit(r) {
		return l.scanNumber(start), nil
	}

	if isIdentStart(r) {
		return l.scanIdentifier(start), nil
	}

	if r == ':' {
		return l.scanAtomOrOperator(start)
	}

	// Operator-spelled atoms like the "..." placeholder; any other '.' is
	// its own token so dotted operator references like ".++" split into a
	// dot and an operator.
	if r == '.' {
		for atom := range reservedOperatorAtoms {
			if l.match(atom) {
				for range atom {
					l.advance()
				}

				return l.token(TokenAtom, start), nil
			}
		}

		l.advance()

		return l.token(TokenDot, start), nil
	}

	if isOperatorRune(r) {
		return l.scanOperator(start)
	}

	if strings.ContainsRune(",;()[]{}", r) {
		l.advance()

		return l.token(TokenPunct, start), nil
	}

	l.advance()

	return lexer.Token{}, ErrUnexpectedCharacter.withPos(start).withText(string(r))
}

func (l *lexerState) pos() lexer.Position {
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *lexerState) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexerState) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	return r
}

func (l *lexerState) peekAt(n int) rune {
	off := l.offset + n
	if off >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[off:])

	return r
}

func (l *lexerState) advance() rune {
	if l.eof() {
		return 0
	}

	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func (l *lexerState) match(s string) bool {
	return strings.HasPrefix(l.input[l.offset:], s)
}

func (l *lexerState) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: l.input[start.Offset:l.offset],
		Pos:   start,
	}
}

// scanIdentifier scans a name and decides between TokenIdent, TokenAlias,
// and TokenAtom (for reserved literals like true/false/nil). An embedded @
// is consumed: node names like foo@host lex as one token, and the caller
// decides whether the position permits them.
func (l *lexerState) scanIdentifier(start lexer.Position) lexer.Token {
	l.advance() // consume first char

	for !l.eof() && isIdentContinue(l.peek()) {
		l.advance()
	}

	// A single trailing ? or ! is part of the name, e.g. "valid?".
	if !l.eof() && (l.peek() == '?' || l.peek() == '!') {
		l.advance()
	}

	tok := l.token(TokenIdent, start)

	first, _ := utf8.DecodeRuneInString(tok.Value)

	switch {
	case reservedAtoms[tok.Value]:
		tok.Type = TokenAtom
	case unicode.IsUpper(first):
		tok.Type = TokenAlias
	}

	return tok
}

// scanAtomOrOperator handles a leading ':'. A doubled colon is the start of
// an operator run ("::"); a colon directly on a name or on a valid operator
// is an unquoted atom (:ok, :+, :=>); anything else is an error.
func (l *lexerState) scanAtomOrOperator(start lexer.Position) (lexer.Token, error) {
	if l.peekAt(1) == ':' {
		return l.scanOperator(start)
	}

	l.advance() // consume ':'

	next := l.peek()

	switch {
	case isIdentStart(next):
		for !l.eof() && isIdentContinue(l.peek()) {
			l.advance()
		}

		if !l.eof() && (l.peek() == '?' || l.peek() == '!') {
			l.advance()
		}

		return l.token(TokenAtom, start), nil
	case isOperatorRune(next):
		for !l.eof() && isOperatorRune(l.peek()) {
			l.advance()
		}

		op := l.input[start.Offset+1 : l.offset]
		if !isOperatorShaped(op) {
			return lexer.Token{}, ErrUnknownOperator.withPos(start).withText(l.input[start.Offset:l.offset])
		}

		return l.token(TokenAtom, start), nil
	default:
		return lexer.Token{}, ErrBareColon.withPos(start)
	}
}

// scanOperator scans a maximal run of operator characters and validates it
// against the operator vocabulary.
func (l *lexerState) scanOperator(start lexer.Position) (lexer.Token, error) {
	for !l.eof() && isOperatorRune(l.peek()) {
		l.advance()
	}

	tok := l.token(TokenOp, start)
	if !isOperatorShaped(tok.Value) {
		return lexer.Token{}, ErrUnknownOperator.withPos(start).withText(tok.Value)
	}

	return tok, nil
}

func (l *lexerState) scanNumber(start lexer.Position) lexer.Token {
	for !l.eof() && (isDigit(l.peek()) || l.peek() == '_') {
		l.advance()
	}

	return l.token(TokenNumber, start)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || r == '@' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isOperatorRune reports whether r can appear in an operator run. '.' is
// excluded: it always lexes as its own token.
func isOperatorRune(r rune) bool {
	return strings.ContainsRune(`\<>+-*/:=|&~^%!`, r)
}

// lexAll runs the lexer over input and collects every non-whitespace token
// up to EOF.
func lexAll(input string) ([]lexer.Token, error) {
	lx, err := defaultLexer.LexString("", input)
	if err != nil {
		return nil, err
	}

	var toks []lexer.Token

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		if tok.EOF() {
			return toks, nil
		}

		if tok.Type == TokenWhitespace {
			continue
		}

		toks = append(toks, tok)
	}
}

// Identify reports whether token is, in its entirety, a single valid
// identifier-or-alias-or-reserved-atom token, and if so which token type
// (TokenIdent, TokenAlias, or TokenAtom) it lexes as. ok is false if token
// is empty, starts with a digit, or lexes to anything other than exactly
// one name-shaped token. An embedded @ is consumed (node names like
// foo@host are spellable as atoms) and reported via hasAt so the caller can
// decide whether the position permits it.
func Identify(token string) (typ lexer.TokenType, asciiOnly bool, hasAt bool, ok bool) {
	toks, err := lexAll(token)
	if err != nil || len(toks) != 1 {
		return TokenEOF, false, false, false
	}

	tok := toks[0]

	switch tok.Type {
	case TokenIdent, TokenAlias, TokenAtom:
	default:
		return TokenEOF, false, false, false
	}

	asciiOnly = true
	for i, r := range tok.Value {
		if r > unicode.MaxASCII {
			asciiOnly = false
		}

		if r == '@' && i > 0 {
			hasAt = true
		}
	}

	return tok.Type, asciiOnly, hasAt, true
}

// TokenizeOperatorRun lexes text (a run of operator characters) into
// positioned tokens. ok is false when the run contains something the lexer
// cannot shape into a token, e.g. an operator the language does not define.
// The shapes callers care about are a single atom token (the "..."
// placeholder or a :-prefixed operator atom such as :+ or :=>), a dot token
// followed by an operator token, and a single operator token.
func TokenizeOperatorRun(text string) ([]lexer.Token, bool) {
	if text == "" {
		return nil, false
	}

	toks, err := lexAll(text)
	if err != nil {
		return nil, false
	}

	return toks, true
}

// binaryOps and unaryOps are the operator vocabulary of the language. Every
// symbol is spelled from the operator character set
// (\ < > + - * / : = | & ~ ^ % . !).
var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "<>": true, "++": true, "--": true,
	"|>": true, "<-": true, "->": true, "=>": true, "<<": true, ">>": true,
	"::": true, "..": true, "=": true, "=~": true,
	"&&&": true, "|||": true, "^^^": true, "~~~": true,
	"<<<": true, ">>>": true, "\\\\": true,
}

var unaryOps = map[string]bool{
	"-": true, "+": true, "!": true, "~~~": true, "&": true, "^": true,
}

// incompleteOps are proper prefixes of a valid operator that are not
// themselves valid operators.
var incompleteOps = map[string]bool{
	"^^": true, "~~": true, "~": true,
}

// IsIncomplete reports whether acc is an incomplete-but-extensible operator
// prefix.
func IsIncomplete(acc string) bool {
	return incompleteOps[acc]
}

// IsUnaryOp reports whether op is a recognized unary operator.
func IsUnaryOp(op string) bool {
	return unaryOps[op]
}

// IsBinaryOp reports whether op is a recognized binary operator.
func IsBinaryOp(op string) bool {
	return binaryOps[op]
}

// Operators returns every recognized operator symbol, sorted, for tooling
// that wants to offer them as completion candidates (package lsp's
// completion mapping).
func Operators() []string {
	seen := make(map[string]bool, len(binaryOps)+len(unaryOps))
	for op := range binaryOps {
		seen[op] = true
	}

	for op := range unaryOps {
		seen[op] = true
	}

	ops := make([]string, 0, len(seen))
	for op := range seen {
		ops = append(ops, op)
	}

	sort.Strings(ops)

	return ops
}

// isOperatorShaped reports whether op is recognized as unary or binary.
func isOperatorShaped(op string) bool {
	return IsUnaryOp(op) || IsBinaryOp(op)
}
