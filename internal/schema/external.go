package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ExternalToolError reports a generator that ran but exited unsuccessfully.
// The CLI exits with the same code.
type ExternalToolError struct {
	Command  string
	ExitCode int
	Stderr   string
}

// Error includes the tool's stderr when it printed anything.
func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("schema: %s exited with code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// External pipes the compact schema document to a command on stdin and
// takes the declarations from its stdout.
type External struct {
	Command string
	Args    []string
}

// DefaultExternal is json2ts from json-schema-to-typescript, which needs
// its .cmd shim on Windows.
func DefaultExternal() External {
	if runtime.GOOS == "windows" {
		return External{Command: "json2ts.cmd"}
	}
	return External{Command: "json2ts"}
}

// Generate runs the command with doc on stdin.
func (e External) Generate(ctx context.Context, doc *Schema) ([]byte, error) {
	input, err := doc.Compact()
	if err != nil {
		return nil, fmt.Errorf("schema: encode for %s: %w", e.Command, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Command, e.Args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return nil, &ExternalToolError{
				Command:  e.Command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("schema: %s: %w", e.Command, ctx.Err())
		}
		return nil, fmt.Errorf("schema: running %s: %w", e.Command, err)
	}
	return stdout.Bytes(), nil
}

// GeneratorFor picks a generator from its configured name. "" and "builtin"
// select Builtin, "json2ts" selects DefaultExternal, and anything else is
// split on whitespace into a command line.
func GeneratorFor(spec string) Generator {
	fields := strings.Fields(spec)
	switch {
	case len(fields) == 0 || (len(fields) == 1 && fields[0] == "builtin"):
		return Builtin{}
	case len(fields) == 1 && fields[0] == "json2ts":
		return DefaultExternal()
	default:
		return External{Command: fields[0], Args: fields[1:]}
	}
}
