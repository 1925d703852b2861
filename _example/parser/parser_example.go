package main

import (
	"log"
	"os"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/parser"
)

func main() {
	input := `'fn 89 'A 'B 67 3.27 #false "Hello world!"`

	exprs, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.Print(os.Stdout, exprs); err != nil {
		log.Fatal("ast.Print:", err)
	}
}
