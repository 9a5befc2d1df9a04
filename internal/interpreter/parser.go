package interpreter

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// commandLine is one tokenized input line: a verb followed by optional
// whitespace-separated argument words.
type commandLine struct {
	Verb string   `parser:"@Word"`
	Args []string `parser:"@Word*"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `\S+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[commandLine](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

func parseLine(text string) (*commandLine, error) {
	return parser.ParseString("", text)
}
