// Package shell generates the qm wrapper function and installs it into the
// user's shell config file. The wrapper is what actually changes directory:
// a child process cannot cd its parent shell, so `go` only prints the path
// and the function does the rest.
package shell

import (
	"strings"
	"text/template"
)

// Marker identifies an installed wrapper inside a shell config file.
const Marker = "# quickmark shell function"

var functionTemplate = template.Must(template.New("function").Parse(Marker + `
qm() {
    # First check if it's a known subcommand
    case "$1" in
        add|delete|list|install|shell-function)
            {{.Command}} "$@"
            ;;
        # Otherwise treat the first argument as a bookmark name
        *)
            if [ -z "$1" ]; then
                {{.Command}}
            else
                local target_dir=$({{.Command}} go "$1")
                if [ $? -eq 0 ] && [ -n "$target_dir" ]; then
                    cd "$target_dir"
                fi
            fi
            ;;
    esac
}
`))

// Function renders the qm wrapper, parameterized by the installed command name.
func Function(command string) string {
	var buf strings.Builder
	// The template only substitutes a plain string; execution cannot fail.
	_ = functionTemplate.Execute(&buf, struct{ Command string }{Command: command})
	return buf.String()
}
