// Package langdetect infers languages for code content.
//
// Fenced blocks often omit their info string, and the ones that have one
// use aliases ("golang", "py", "sh"). Normalize maps aliases to canonical
// fence tags; Detect guesses a language for bare blocks by combining
// shebang sniffing, a few high-signal content patterns, and go-enry's
// classifier over a fixed candidate set.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is the tag returned when no language can be determined.
const Fallback = "text"

// candidates bounds the classifier search space. Unconstrained
// classification is slow and noisy on short snippets.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Normalize maps a fence info tag to a canonical lowercase language name.
// Unknown tags pass through lowercased; empty stays empty.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return fenceTag(lang)
	}
	return strings.ToLower(tag)
}

// Detect returns the language tag for code content, or Fallback when
// nothing matches with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Fallback
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

// detectByPattern short-circuits on structural tokens the classifier
// tends to confuse on short snippets. Ordered by specificity.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) &&
		(bytes.Contains(trimmed, []byte("RUN ")) || bytes.Contains(trimmed, []byte("COPY "))):
		return "dockerfile"
	case looksLikeHTML(trimmed):
		return "html"
	case (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case looksLikeSQL(trimmed):
		return "sql"
	case strings.Contains(text, "def ") && strings.Contains(text, "):"):
		return "python"
	case strings.Contains(text, "fn main()") || strings.Contains(text, "println!") ||
		strings.Contains(text, "let mut "):
		return "rust"
	case strings.Contains(text, "console.log") || strings.Contains(text, "=> {"):
		return "javascript"
	case looksLikeYAML(content):
		return "yaml"
	}
	return ""
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func looksLikeSQL(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, prefix := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// looksLikeYAML counts key: value lines and root list items. Two or more
// is a strong signal; one could be prose with a colon.
func looksLikeYAML(content []byte) bool {
	keyCount := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			line[0] != '"' {
			keyCount++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keyCount++
		}
	}
	return keyCount >= 2
}

// fenceTag converts an enry language name to the tag form used in fence
// info strings.
func fenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	default:
		return strings.ToLower(lang)
	}
}
