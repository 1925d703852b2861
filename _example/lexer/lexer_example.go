package main

import (
	"fmt"
	"log"

	"github.com/xiam/risp/lexer"
)

func main() {
	input := `'fnA 89 'A #t 67 3.27 "Hello world! 😊"`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		pos := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, pos: %d)\n\t-> %q\n\n", i, tt, pos, lexeme)
	}

	if _, err := lexer.Tokenize([]byte(`(fn_a 1)`)); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
