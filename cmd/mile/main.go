package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/viper-rs/mile"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Trace   bool   `help:"Trace each scan step to stderr."`
		File    string `arg:"" optional:"" type:"existingfile" help:"File to tokenize (defaults to stdin)."`
	}
)

// Token is a lexeme tagged with the rule family that produced it.
type Token struct {
	Kind string
	Text string
}

func keyword(name string) mile.Rule[Token] {
	return mile.Value(mile.Literal[Token](name), func(w string) Token {
		return Token{Kind: "Keyword", Text: w}
	})
}

// rules is a Lua-flavoured grammar of keywords, numbers and identifiers.
// Keyword literals are listed before the identifier class so that their
// partial matches hold identifier growth open until they resolve.
func rules() mile.Rule[Token] {
	return mile.Any(
		mile.Ignore(mile.Whitespace[Token]()),
		keyword("and"), keyword("break"), keyword("do"), keyword("else"),
		keyword("elseif"), keyword("end"), keyword("false"), keyword("for"),
		mile.Value(
			mile.Either(mile.Literal[Token]("function"), mile.Literal[Token]("func")),
			func(w string) Token { return Token{Kind: "Keyword", Text: w} },
		),
		keyword("if"), keyword("in"), keyword("local"), keyword("nil"),
		keyword("not"), keyword("or"), keyword("repeat"), keyword("return"),
		keyword("then"), keyword("true"), keyword("until"), keyword("while"),
		mile.Value(mile.Numeric[Token](), func(w string) Token {
			return Token{Kind: "Number", Text: w}
		}),
		mile.Value(mile.Alphabetic[Token](), func(w string) Token {
			return Token{Kind: "Ident", Text: w}
		}),
	)
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Tokenize Lua-flavoured source with the mile rule engine.`),
		kong.Vars{"version": version},
	)

	source := io.Reader(os.Stdin)
	name := "<stdin>"
	if cli.File != "" {
		f, err := os.Open(cli.File)
		kctx.FatalIfErrorf(err)
		defer f.Close()
		source = f
		name = cli.File
	}
	text, err := io.ReadAll(source)
	kctx.FatalIfErrorf(err)

	options := []mile.Option[Token]{mile.Filename[Token](name)}
	if cli.Trace {
		options = append(options, mile.Trace[Token](os.Stderr))
	}
	scanner := mile.WithBuffer(rules(), string(text), options...)
	tokens, err := mile.ScanAll(scanner)
	for _, token := range tokens {
		repr.Println(token)
	}
	kctx.FatalIfErrorf(err)
}
