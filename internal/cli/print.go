package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

type reportDTO struct {
	File      string         `json:"file" yaml:"file"`
	Default   bool           `json:"default" yaml:"default"`
	Total     int            `json:"total" yaml:"total"`
	Words     []domain.Entry `json:"words" yaml:"words"`
	Max       []domain.Entry `json:"max" yaml:"max"`
	ReadError string         `json:"read_error,omitempty" yaml:"read_error,omitempty"`
}

func toDTO(r domain.Report) reportDTO {
	dto := reportDTO{
		File:    r.Input.Path,
		Default: r.Input.Default,
		Total:   r.Table.Total(),
		Words:   r.Table.Entries(),
		Max:     r.Max,
	}
	if dto.Max == nil {
		dto.Max = []domain.Entry{}
	}
	if r.ReadErr != nil {
		dto.ReadError = r.ReadErr.Error()
	}
	return dto
}

func printReport(w io.Writer, r domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDTO(r))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDTO(r)); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPrettyReport(w, r)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printPrettyReport(w io.Writer, r domain.Report) {
	fmt.Fprintf(w, "Using file: \"%s\".\n", r.Input.Path)
	if r.Input.Default {
		fmt.Fprintln(w, "The input file path can be given as the first program argument.")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Word statistics, sorted alphabetically:")
	for _, e := range r.Table.Entries() {
		fmt.Fprintf(w, "{%s,\t%d}\n", e.Word, e.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Words with the maximum number of occurrences:")
	for _, e := range r.Max {
		fmt.Fprintf(w, "{\"%s\", %d}\n", e.Word, e.Count)
	}
}
