// Package codefile defines the code files a chat session produced and how
// their highlighting language is resolved.
package codefile

import "strings"

// PlainText is the highlighter label used when a file name has no known extension.
const PlainText = "text"

// File is a single code file as returned by the code API.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	// Language is whatever the API claims. It is not used for highlighting;
	// see HighlightLanguage.
	Language string `json:"language"`
}

// extensionLanguages maps lower-cased file extensions to highlighter labels.
var extensionLanguages = map[string]string{
	"js":     "javascript",
	"jsx":    "jsx",
	"ts":     "typescript",
	"tsx":    "tsx",
	"html":   "html",
	"css":    "css",
	"scss":   "scss",
	"sass":   "sass",
	"json":   "json",
	"md":     "markdown",
	"py":     "python",
	"java":   "java",
	"cpp":    "cpp",
	"c":      "c",
	"php":    "php",
	"rb":     "ruby",
	"go":     "go",
	"rs":     "rust",
	"vue":    "vue",
	"svelte": "svelte",
}

// Extension returns the lower-cased text after the last dot in name.
// A name without a dot is returned whole, lower-cased.
func Extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// LanguageForName returns the highlighter label for a file name, derived
// only from its extension. Unknown extensions resolve to PlainText.
func LanguageForName(name string) string {
	if lang, ok := extensionLanguages[Extension(name)]; ok {
		return lang
	}
	return PlainText
}

// HighlightLanguage returns the label used to highlight f. It ignores
// f.Language so rendering depends on the name alone.
func (f File) HighlightLanguage() string {
	return LanguageForName(f.Name)
}

// Lines returns the number of lines in the file content.
func (f File) Lines() int {
	if f.Content == "" {
		return 0
	}
	n := strings.Count(f.Content, "\n")
	if !strings.HasSuffix(f.Content, "\n") {
		n++
	}
	return n
}
