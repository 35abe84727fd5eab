package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// templates. Registry files use {{.VAR_NAME}} rather than $VAR so
// literal $ characters survive, which matters for the masking patterns
// and credential values these files carry:
//   - Regex patterns: ^secret.*$, price\$[0-9]+
//   - Passwords: p@ss$word
//   - Shell snippets: $PATH, ${ARRAY[0]}
//
// Examples:
//   - {{.GITHUB_TOKEN}} → value of GITHUB_TOKEN
//   - {{.DB_HOST}}:{{.DB_PORT}} → hostname:port with both variables expanded
//
// A missing variable expands to the empty string; validation catches
// required fields left empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Hand the original bytes to the YAML parser: it produces a
		// clearer error, or succeeds for files without template syntax.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain more.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
