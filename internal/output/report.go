package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/project-evaluator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats results with the named formatter without touching disk.
func Render(results *domain.Evaluation, format string) ([]byte, error) {
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(results)
}

// GenerateReport writes results in the named format to a timestamped file in
// dir and returns its path. "all" writes every registered format.
func GenerateReport(results *domain.Evaluation, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		paths := make([]string, 0, len(builtInFormatters))
		for _, f := range builtInFormatters {
			p, err := WriteFormatted(f, results, dir)
			if err != nil {
				return paths, fmt.Errorf("%s: %w", f.Name(), err)
			}
			paths = append(paths, p)
		}
		return paths, nil
	}

	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	p, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
