package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coecms/zenmeta/target"
)

var (
	metaInput    string
	authorsFile  string
	metaDryRun   bool
	metaRecordID string
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Upload plan metadata as draft records",
	Long: `Read a plan JSON batch, serialize each plan for the selected portal's
schema and post it as a new draft record.

Each plan is posted independently: a plan that fails to serialize or post
is reported and skipped, the rest of the batch still goes through. An input
file that is not valid JSON aborts the whole run instead.

With --record the metadata replaces an existing draft instead of creating
a new one; the batch must then hold exactly one plan.

The author cache maps raw contributor names to their split given/family
form so hand corrections survive across batches. New names encountered
during the run are saved back to the cache file.

Examples:
  zenmeta meta -i plans.json --portal zenodo
  zenmeta meta -i plans.json --portal invenio --production --authors authors.json
  zenmeta meta -i plans.json --dry-run`,
	RunE: runMeta,
}

func init() {
	metaCmd.Flags().StringVarP(&metaInput, "input", "i", "", "Plan JSON batch file (default: stdin)")
	metaCmd.Flags().StringVar(&authorsFile, "authors", "authors.json", "Author cache file")
	metaCmd.Flags().BoolVar(&metaDryRun, "dry-run", false, "Serialize records without posting them")
	metaCmd.Flags().StringVar(&metaRecordID, "record", "", "Existing record id to update in place")
}

func runMeta(cmd *cobra.Command, args []string) error {
	var input io.Reader
	inputName := "stdin"
	if metaInput != "" {
		f, err := os.Open(metaInput)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		input = f
		inputName = metaInput
	} else {
		input = os.Stdin
	}

	plans, err := readPlans(input, inputName)
	if err != nil {
		return err
	}

	serializer, err := target.Get(portal)
	if err != nil {
		return err
	}

	opts := target.NewOptions(communityID())
	if authorsFile != "" {
		if err := opts.Authors.Load(authorsFile); err != nil {
			return fmt.Errorf("loading author cache: %w", err)
		}
	}

	if metaDryRun {
		// Emit the whole serialized batch instead of posting it.
		if err := target.Serialize(cmd.OutOrStdout(), serializer, plans, opts); err != nil {
			return err
		}
		logDiagnostics(opts.Diags)
		return saveAuthors(opts.Authors)
	}

	client, err := newDepositClient()
	if err != nil {
		return err
	}

	if metaRecordID != "" {
		if len(plans) != 1 {
			return fmt.Errorf("--record updates a single record, input has %d plans", len(plans))
		}
		record, err := serializer.BuildRecord(plans[0], opts)
		if err != nil {
			return fmt.Errorf("serializing %s: %w", plans[0].Title, err)
		}
		rec, err := client.Update(cmd.Context(), metaRecordID, record)
		if err != nil {
			return fmt.Errorf("updating record %s: %w", metaRecordID, err)
		}
		cmd.Printf("OK   %s -> record %s updated\n", plans[0].Title, rec.ID)
		logDiagnostics(opts.Diags)
		return saveAuthors(opts.Authors)
	}

	failed := 0
	for _, p := range plans {
		record, err := serializer.BuildRecord(p, opts)
		if err != nil {
			cmd.PrintErrf("FAIL %s: %v\n", p.Title, err)
			failed++
			continue
		}
		rec, err := client.Create(cmd.Context(), record)
		if err != nil {
			cmd.PrintErrf("FAIL %s: %v\n", p.Title, err)
			failed++
			continue
		}
		cmd.Printf("OK   %s -> record %s\n", p.Title, rec.ID)
	}
	logDiagnostics(opts.Diags)
	cmd.Printf("%d of %d records posted\n", len(plans)-failed, len(plans))

	if err := saveAuthors(opts.Authors); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d records failed", failed)
	}
	return nil
}

func saveAuthors(cache *target.AuthorCache) error {
	if authorsFile == "" || cache.Len() == 0 {
		return nil
	}
	if err := cache.Save(authorsFile); err != nil {
		return fmt.Errorf("saving author cache: %w", err)
	}
	return nil
}
