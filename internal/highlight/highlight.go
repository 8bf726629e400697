// Package highlight colours term text with a chroma lexer for the term
// syntax.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is used when a theme name is empty or unknown.
const DefaultTheme = "monokai"

// Lexer tokenises terms and rules.
var Lexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Stack Term",
		Aliases:   []string{"term", "hvm"},
		Filenames: []string{"*.hvm"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `//[^\n]*`, Type: chroma.CommentSingle},
				{Pattern: `\s+`, Type: chroma.TextWhitespace},
				{Pattern: `\b(let|dup)\b`, Type: chroma.Keyword},
				{Pattern: `[λ@]`, Type: chroma.KeywordDeclaration},
				{Pattern: `[0-9]+\b`, Type: chroma.LiteralNumberInteger},
				{Pattern: `[A-Z][A-Za-z0-9_.]*`, Type: chroma.NameClass},
				{Pattern: `[a-z_.][A-Za-z0-9_.]*`, Type: chroma.NameVariable},
				{Pattern: `<<|>>|<=|>=|==|!=|[-+*/%&|^<>]`, Type: chroma.Operator},
				{Pattern: `=`, Type: chroma.Operator},
				{Pattern: `[(){};]`, Type: chroma.Punctuation},
				{Pattern: `.`, Type: chroma.Error},
			},
		}
	},
)

// Span is a run of text sharing one colour.
type Span struct {
	Text string
	// Colour is 0xRRGGBB; HasColour is false when the theme leaves it unset.
	Colour    uint32
	HasColour bool
	Bold      bool
}

// Style resolves a theme name, falling back to DefaultTheme.
func Style(theme string) *chroma.Style {
	if theme != "" {
		if style := chromaStyles.Get(theme); style != nil && style != chromaStyles.Fallback {
			return style
		}
	}
	if style := chromaStyles.Get(DefaultTheme); style != nil {
		return style
	}
	return chromaStyles.Fallback
}

// Spans splits text into coloured runs. On lexer failure the whole text is
// returned as one uncoloured span.
func Spans(text, theme string) []Span {
	iterator, err := Lexer.Tokenise(nil, text)
	if err != nil {
		return []Span{{Text: text}}
	}
	style := Style(theme)
	var spans []Span
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		entry := style.Get(token.Type)
		span := Span{Text: token.Value, Bold: entry.Bold == chroma.Yes}
		if entry.Colour.IsSet() {
			span.HasColour = true
			span.Colour = uint32(entry.Colour.Red())<<16 | uint32(entry.Colour.Green())<<8 | uint32(entry.Colour.Blue())
		}
		spans = append(spans, span)
	}
	return spans
}

// ANSI returns text with terminal256 escape codes for theme. Failures fall
// back to the plain text.
func ANSI(text, theme string) string {
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	iterator, err := Lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, Style(theme), iterator); err != nil {
		return text
	}
	return buf.String()
}
