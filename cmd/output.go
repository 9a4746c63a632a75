package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/coecms/zenmeta/plan"
)

// writePlans encodes a plan batch as a JSON array.
func writePlans(w io.Writer, plans []*plan.Plan, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(plans); err != nil {
		return fmt.Errorf("encoding plans: %w", err)
	}
	return nil
}

// readPlans decodes a plan batch. A file that does not parse is fatal
// to the whole run, there is no way to tell which plans were lost.
func readPlans(r io.Reader, name string) ([]*plan.Plan, error) {
	var plans []*plan.Plan
	if err := json.NewDecoder(r).Decode(&plans); err != nil {
		return nil, fmt.Errorf("parsing plan batch %s: %w", name, err)
	}
	return plans, nil
}

// logDiagnostics reports every heuristic fallback taken during a run so
// an operator can review the degraded fields.
func logDiagnostics(sink *plan.DiagSink) {
	for _, d := range sink.All() {
		slog.Warn("heuristic fallback", "component", d.Component, "field", d.Field, "detail", d.Message)
	}
}
