package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// Names used for inputs that do not come from a file.
const (
	TextSource  = "<text>"
	StdinSource = "<stdin>"
)

// ErrNoInput is returned when no text, file or piped stdin was supplied.
var ErrNoInput = errors.New("no input: pass files, --text, or pipe content on stdin")

// Input is one piece of raw text and where it came from.
type Input struct {
	Source string
	Text   string
}

// ReadInputs collects raw text from inline text, files or stdin, in that
// order of preference. Unreadable files do not stop the others: the inputs
// read so far are returned together with the combined error.
func ReadInputs(text string, files []string, stdin io.Reader) ([]Input, error) {
	if text != "" {
		return []Input{{Source: TextSource, Text: text}}, nil
	}

	if len(files) > 0 {
		var (
			inputs []Input
			errs   error
		)
		for _, path := range files {
			if path == "-" {
				data, err := readStdin(stdin)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				inputs = append(inputs, Input{Source: StdinSource, Text: data})
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("failed to read %s: %w", path, err))
				continue
			}
			inputs = append(inputs, Input{Source: path, Text: string(data)})
		}
		return inputs, errs
	}

	data, err := readStdin(stdin)
	if err != nil {
		return nil, err
	}
	return []Input{{Source: StdinSource, Text: data}}, nil
}

// readStdin reads all of stdin, refusing an interactive terminal.
func readStdin(stdin io.Reader) (string, error) {
	if stdin == nil {
		return "", ErrNoInput
	}
	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", ErrNoInput
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
