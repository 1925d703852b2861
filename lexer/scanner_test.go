package lexer

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerExhausted(t *testing.T) {
	lx := New([]byte(`1 2 3 4 5`))

	tokens, err := lx.Scan()
	assert.NoError(t, err)
	assert.Len(t, tokens, 9)

	tokens, err = lx.Scan()
	assert.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestScannerConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			in := fmt.Sprintf(`%d 'n%c %d.%d`, i, 'a'+rune(i), i, i+1)
			tokens, err := Tokenize([]byte(in))
			assert.NoError(t, err)
			assert.Len(t, tokens, 8)
			assert.Equal(t, fmt.Sprintf("%d", i), tokens[0].Text())
		}(i)
	}

	wg.Wait()
}
