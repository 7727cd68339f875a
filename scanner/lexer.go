package scanner

import (
	"sync"

	"github.com/npillmayer/partition"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// A word is a maximal run of bytes which are not ASCII white space.
// Form feed (0x0C) is given as a literal byte, lexmachine has no escape for it.
const (
	blanksPattern = `[ \t\n\r` + "\x0c" + `]+`
	wordPattern   = `[^ \t\n\r` + "\x0c" + `]+`
)

// The word DFA is compiled once and shared by all readers. Scanners created
// from it keep their own position.
var wordLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

func words() (*lexmachine.Lexer, error) {
	wordLexer.once.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(blanksPattern), skip)
		lexer.Add([]byte(wordPattern), makeWord)
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			wordLexer.err = err
			return
		}
		wordLexer.lexer = lexer
	})
	return wordLexer.lexer, wordLexer.err
}

// skip ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeWord wraps a scanned match into a token. The lexeme is copied, the token
// does not refer to the line buffer.
func makeWord(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return Token{
		lexeme: string(m.Bytes),
		span:   partition.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))},
	}, nil
}
