package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coecms/zenmeta/plan"
	"github.com/coecms/zenmeta/source"
)

var (
	convertInput  string
	convertOutput string
	convertPretty bool
	showDiags     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <source>",
	Short: "Convert a catalogue record to plan JSON",
	Long: `Convert a raw catalogue document into the common plan format.

Arguments:
  source    Source format (geonetwork, csiro), or "auto" to detect

Input defaults to stdin, output defaults to stdout. The output is a JSON
array of plans, ready for "zenmeta meta".

Examples:
  zenmeta convert geonetwork -i record.xml -o plans.json
  cat collection.json | zenmeta convert csiro
  zenmeta convert auto -i record.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", true, "Indent the JSON output")
	convertCmd.Flags().BoolVar(&showDiags, "diagnostics", true, "Log heuristic fallbacks applied while parsing")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	sourceName := args[0]

	var input io.Reader
	inputName := "stdin"
	if convertInput != "" {
		f, err := os.Open(convertInput)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = convertInput
	} else {
		input = os.Stdin
	}

	var output io.Writer
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	var adapter source.Adapter
	if sourceName == "auto" {
		data, rerr := io.ReadAll(input)
		if rerr != nil {
			return fmt.Errorf("reading %s: %w", inputName, rerr)
		}
		adapter, err = source.Detect(data)
		if err != nil {
			return fmt.Errorf("detecting source format of %s: %w", inputName, err)
		}
		input = bytes.NewReader(data)
	} else {
		adapter, err = source.Get(sourceName)
		if err != nil {
			return err
		}
	}

	opts := source.NewParseOptions()
	opts.SourceName = inputName

	plans, err := adapter.Parse(input, opts)
	if err != nil {
		return fmt.Errorf("parsing %s as %s: %w", inputName, adapter.Name(), err)
	}
	for _, p := range plans {
		p.Parties = plan.Dedupe(p.Parties)
	}
	if showDiags {
		logDiagnostics(opts.Diags)
	}

	return writePlans(output, plans, convertPretty)
}
