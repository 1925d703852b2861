package lexer

type lexFunc func(*Lexer) (Token, error)

type recognizer struct {
	match func(r rune) bool
	lex   lexFunc
}

// recognizers are tried in this order at every position, the first one that
// matches the current rune owns it. Digits come before letters and "'" and
// "#" are claimed before any identifier is attempted.
var recognizers = []recognizer{
	{isDigit, lexNumber},
	{isQuote, lexEmit(TokenQuote)},
	{isLetter, lexIdentifier},
	{isSpace, lexEmit(TokenWhitespace)},
	{isDot, lexEmit(TokenDot)},
	{isHash, lexBool},
	{isDoubleQuote, lexString},
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:  []rune(string(in)),
		buf: []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in []rune

	buf []rune

	start  int
	offset int
}

// Scan splits the whole input into tokens. Either all tokens are returned or
// none, along with an *Error.
func (lx *Lexer) Scan() ([]Token, error) {
	tokens := []Token{}

	for !lx.eof() {
		tok, err := lx.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func (lx *Lexer) scanToken() (Token, error) {
	r, _ := lx.peek()
	for _, rc := range recognizers {
		if rc.match(r) {
			return rc.lex(lx)
		}
	}
	return Token{}, &Error{
		Err:  ErrUnknownToken,
		Char: r,
		Text: string(r),
		Pos:  lx.offset,
	}
}

func (lx *Lexer) eof() bool {
	return lx.offset >= len(lx.in)
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.eof() {
		return rune(0), false
	}
	return lx.in[lx.offset], true
}

func (lx *Lexer) next() rune {
	r := lx.in[lx.offset]
	lx.buf = append(lx.buf, r)
	lx.offset++
	return r
}

// skip moves past the current rune without adding it to the lexeme
func (lx *Lexer) skip() {
	lx.offset++
}

func (lx *Lexer) collect(fn func(r rune) bool) {
	for {
		r, ok := lx.peek()
		if !ok || !fn(r) {
			return
		}
		lx.next()
	}
}

func (lx *Lexer) emit(tt TokenType) Token {
	tok := Token{
		tt:     tt,
		lexeme: string(lx.buf),
		pos:    lx.start,
	}

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]

	return tok
}

func (lx *Lexer) errorf(err error) error {
	e := &Error{
		Err:  err,
		Text: string(lx.buf),
		Pos:  lx.start,
	}
	if len(lx.buf) > 0 {
		e.Char = lx.buf[0]
	}
	return e
}

func lexEmit(tt TokenType) lexFunc {
	return func(lx *Lexer) (Token, error) {
		lx.next()
		return lx.emit(tt), nil
	}
}

func lexNumber(lx *Lexer) (Token, error) {
	lx.collect(isDigit)
	return lx.emit(TokenNumber), nil
}

func lexIdentifier(lx *Lexer) (Token, error) {
	lx.collect(isLetter)
	return lx.emit(TokenIdentifier), nil
}

func lexBool(lx *Lexer) (Token, error) {
	lx.next()
	lx.collect(isLetter)

	if _, ok := boolValues[string(lx.buf[1:])]; !ok {
		return Token{}, lx.errorf(ErrInvalidBool)
	}
	return lx.emit(TokenBool), nil
}

func lexString(lx *Lexer) (Token, error) {
	lx.skip()
	lx.collect(func(r rune) bool {
		return !isDoubleQuote(r)
	})

	if lx.eof() {
		return Token{}, &Error{
			Err: ErrUnterminatedString,
			Pos: lx.offset,
			EOF: true,
		}
	}

	lx.skip()
	return lx.emit(TokenString), nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	return New(in).Scan()
}
