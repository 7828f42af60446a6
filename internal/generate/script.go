package generate

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// scriptHeader is the safety preamble every generated script starts with:
// stop on first error, stop on unset variables, propagate pipe failures.
// log_phase brackets each phase of the script in the output.
const scriptHeader = `#!/usr/bin/env bash
set -euo pipefail

log_phase() {
	echo "[sysforge] $1"
}
`

// renderScript renders a script body template with the sprig function map
// and prepends the safety header. name is used in template error messages
// only.
func renderScript(name, body string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(body)
	if err != nil {
		return "", fmt.Errorf("parsing script template %s: %w", name, err)
	}

	var sb strings.Builder
	sb.WriteString(scriptHeader)
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering script template %s: %w", name, err)
	}
	return sb.String(), nil
}

// placeholderScript produces an inert script for an IR selection the
// generator has no backend for. The script carries an explanatory comment
// and succeeds without doing anything.
func placeholderScript(what, selected string) string {
	var sb strings.Builder
	sb.WriteString(scriptHeader)
	fmt.Fprintf(&sb, "\n# %s %q is not supported by this generator.\n", what, selected)
	sb.WriteString("# This placeholder was emitted instead of failing the compilation.\n")
	fmt.Fprintf(&sb, "log_phase %q\n", "skipped: unsupported "+what)
	return sb.String()
}
