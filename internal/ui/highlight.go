package ui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of spaces a tab expands to before highlighting
const TabWidth = 4

// gutterSeparator sits between the line number and the code
const gutterSeparator = " │ "

// lexerFor returns the chroma lexer for a highlighter label, falling back
// to plain text when chroma has no lexer for it.
func lexerFor(language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// highlightCode applies syntax highlighting to code using chroma and returns
// the formatted lines with a line-number gutter. Lines wider than width are
// wrapped; continuation lines get a blank gutter. A width <= 0 disables wrapping.
func highlightCode(code, language string, width int) string {
	code = strings.ReplaceAll(code, "\t", strings.Repeat(" ", TabWidth))
	lineCount := countLines(code)

	style := styles.Get(SyntaxStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var tokenLines [][]chroma.Token
	iterator, err := lexerFor(language).Tokenise(nil, code)
	if err == nil {
		tokenLines = chroma.SplitTokensIntoLines(iterator.Tokens())
	} else {
		// Unhighlighted fallback: one text token per line
		for _, line := range strings.Split(code, "\n") {
			tokenLines = append(tokenLines, []chroma.Token{{Type: chroma.Text, Value: line}})
		}
	}

	numberWidth := len(strconv.Itoa(max(lineCount, 1)))
	codeWidth := 0
	if width > 0 {
		codeWidth = max(width-numberWidth-runewidth.StringWidth(gutterSeparator), 1)
	}
	blankGutter := GutterStyle.Render(strings.Repeat(" ", numberWidth) + gutterSeparator)

	var sb strings.Builder
	var buf bytes.Buffer
	for i := 0; i < max(lineCount, 1); i++ {
		var tokens []chroma.Token
		if i < len(tokenLines) {
			tokens = trimNewline(tokenLines[i])
		}

		segments := [][]chroma.Token{tokens}
		if codeWidth > 0 {
			segments = wrapTokens(tokens, codeWidth)
		}

		for j, seg := range segments {
			if i > 0 || j > 0 {
				sb.WriteString("\n")
			}
			if j == 0 {
				sb.WriteString(GutterStyle.Render(fmt.Sprintf("%*d", numberWidth, i+1) + gutterSeparator))
			} else {
				sb.WriteString(blankGutter)
			}

			buf.Reset()
			if err := formatter.Format(&buf, style, chroma.Literator(seg...)); err != nil {
				sb.WriteString(tokensText(seg))
				continue
			}
			sb.WriteString(buf.String())
		}
	}

	return sb.String()
}

// countLines returns the number of display lines in code; a trailing
// newline does not start a new line.
func countLines(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(code, "\n"), "\n") + 1
}

// trimNewline drops the trailing newline chroma leaves on each line
func trimNewline(tokens []chroma.Token) []chroma.Token {
	out := make([]chroma.Token, 0, len(tokens))
	for _, tok := range tokens {
		tok.Value = strings.TrimRight(tok.Value, "\r\n")
		if tok.Value != "" {
			out = append(out, tok)
		}
	}
	return out
}

// wrapTokens splits a line of tokens into segments no wider than width
// display cells. Tokens are split mid-value when needed so every segment
// formats independently.
func wrapTokens(tokens []chroma.Token, width int) [][]chroma.Token {
	var segments [][]chroma.Token
	var current []chroma.Token
	used := 0

	for _, tok := range tokens {
		value := tok.Value
		for value != "" {
			var part strings.Builder
			rest := ""
			for i, r := range value {
				rw := runewidth.RuneWidth(r)
				if used+rw > width && used > 0 {
					rest = value[i:]
					break
				}
				part.WriteRune(r)
				used += rw
			}
			if part.Len() > 0 {
				current = append(current, chroma.Token{Type: tok.Type, Value: part.String()})
			}
			if rest == "" {
				break
			}
			segments = append(segments, current)
			current = nil
			used = 0
			value = rest
		}
	}

	return append(segments, current)
}

func tokensText(tokens []chroma.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Value)
	}
	return sb.String()
}
