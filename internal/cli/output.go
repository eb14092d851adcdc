// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sublevel/config"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Computation failure (invalid series, unstable coefficients, etc.)
	ExitCommandError = 2 // Command error (bad flags, unreadable input, invalid config)
)

// ExitError carries an exit code alongside an error.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // Short context
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err.
// Returns ExitFailure if err is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// textRenderer is implemented by payloads with a plain-text form.
type textRenderer interface {
	renderText(w io.Writer) error
}

// OutputFormatter writes command results as JSON, YAML or text.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the envelope for JSON and YAML output.
type Response struct {
	Status string      `json:"status" yaml:"status"`
	Data   interface{} `json:"data" yaml:"data"`
}

// Success writes data in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	switch f.Format {
	case config.FormatJSON:
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	case config.FormatYAML:
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(Response{Status: "ok", Data: data}); err != nil {
			return err
		}
		return enc.Close()
	}

	if r, ok := data.(textRenderer); ok {
		return r.renderText(f.Writer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}
