package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ffplan/freedom-planner/internal/domain"
)

// WriteReport renders plan in the named format to w.
func WriteReport(w io.Writer, plan *domain.Plan, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(plan)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s report: %w", f.Name(), err)
	}
	return nil
}

// GenerateReport writes plan to timestamped files in dir and returns their
// paths. "all" writes the verbose console report and the CSV ledger.
func GenerateReport(plan *domain.Plan, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = []Formatter{ConsoleVerboseFormatter{}, CSVLedgerFormatter{}}
	} else if f := GetFormatterByName(format); f != nil {
		formatters = []Formatter{f}
	} else {
		return nil, unsupportedFormat(format)
	}

	var paths []string
	for _, f := range formatters {
		path, err := WriteFormatted(f, plan, dir, extension(f))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extension(f Formatter) string {
	name := f.Name()
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case strings.HasPrefix(name, "console"):
		return "txt"
	default:
		return name
	}
}
