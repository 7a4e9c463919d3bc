package lookuplib

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

const (
	// DefaultResultsFileName is a name of the file with results, it is
	// created in current working directory.
	DefaultResultsFileName = "IPLookupResults.json"

	// ResultsIndent is an indentation of JSON output.
	ResultsIndent = "    "
)

// WriteResults prints results to stdout and then saves the same JSON
// into filename. Existing file is truncated. Write is not atomic.
func WriteResults(stdout io.Writer, fs afero.Fs, filename string, results *ResultSet) error {
	data, err := marshalJSON(results, ResultsIndent)
	if err != nil {
		return fmt.Errorf("cannot render results: %w", err)
	}

	if _, err := fmt.Fprintln(stdout, string(data)); err != nil {
		return fmt.Errorf("cannot print results: %w", err)
	}

	if err := afero.WriteFile(fs, filename, data, 0644); err != nil {
		return fmt.Errorf("cannot save results to %s: %w", filename, err)
	}

	fmt.Fprintf(stdout, "Results saved to %s\n", filename) // nolint: errcheck

	return nil
}
