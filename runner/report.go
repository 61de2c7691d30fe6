package runner

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Report writes results in the given format
func Report(w io.Writer, results []*Result, format string) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return encoder.Close()
	case FormatText, "":
		writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(writer, "PUZZLE\tPART\tANSWER\tELAPSED")
		var total time.Duration
		for _, result := range results {
			answer := result.Answer
			if result.Err != nil {
				answer = "error: " + result.Err.Error()
			}
			total += result.Elapsed
			_, _ = fmt.Fprintf(writer, "%v\t%d\t%s\t%v\n", Key{Year: result.Year, Day: result.Day}, result.Part, answer, result.Elapsed.Round(time.Microsecond))
		}
		_, _ = fmt.Fprintf(writer, "total\t\t\t%v\n", total.Round(time.Microsecond))
		return writer.Flush()
	default:
		return fmt.Errorf("unsupported report format: %v", format)
	}
}
