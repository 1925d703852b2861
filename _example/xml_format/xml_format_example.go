package main

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/parser"
)

func printTree(exprs []ast.Expr) {
	fmt.Printf("<exprs>\n")
	for i := range exprs {
		var text strings.Builder
		if err := xml.EscapeText(&text, []byte(exprs[i].Encode())); err != nil {
			log.Fatal("xml.EscapeText:", err)
		}
		fmt.Printf("  <%s>%s</%s>\n", exprs[i].Type(), text.String(), exprs[i].Type())
	}
	fmt.Printf("</exprs>\n")
}

func main() {
	input := `'fnA 89 'A 'B 67 3.27 66 3 53 "Hello <world>!" #t`

	exprs, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(exprs)
}
