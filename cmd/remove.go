package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coecms/zenmeta/deposit"
)

var removeUnsafe bool

var removeCmd = &cobra.Command{
	Use:   "remove [record-id...]",
	Short: "Delete draft records",
	Long: `Delete draft records from the selected portal.

With record ids, only those records are deleted. Without arguments, every
unsubmitted draft is deleted, scoped to a community when --community is set.
Each deletion asks for confirmation unless --unsafe is given. Published
records are never deleted.

Examples:
  zenmeta remove 123456 123457 --portal zenodo
  zenmeta remove --portal zenodo --community clex-data
  zenmeta remove --unsafe`,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeUnsafe, "unsafe", false, "Delete without asking for confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	client, err := newDepositClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var records []deposit.Record
	if len(args) > 0 {
		for _, id := range args {
			rec, err := client.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching record %s: %w", id, err)
			}
			records = append(records, *rec)
		}
	} else {
		// The state filter has been seen to be ignored server side,
		// so the returned list is filtered again here.
		all, _, err := client.List(ctx, deposit.ListQuery{
			State:     deposit.StateUnsubmitted,
			Community: communityID(),
		})
		if err != nil {
			return fmt.Errorf("listing drafts: %w", err)
		}
		for _, rec := range all {
			if rec.State == deposit.StateUnsubmitted {
				records = append(records, rec)
			}
		}
	}

	stdin := bufio.NewReader(cmd.InOrStdin())
	for _, rec := range records {
		if !removeUnsafe && !confirm(cmd, stdin, fmt.Sprintf("Are you sure you want to delete %s? (Y/N) ", rec.ID)) {
			cmd.Printf("Skipping record %s\n", rec.ID)
			continue
		}
		if err := client.Delete(ctx, &rec); err != nil {
			if errors.Is(err, deposit.ErrPublishedRecord) {
				cmd.PrintErrf("Record %s is published, skipping\n", rec.ID)
				continue
			}
			cmd.PrintErrf("Failed to delete %s: %v\n", rec.ID, err)
			continue
		}
		cmd.Printf("Record %s deleted\n", rec.ID)
	}
	return nil
}

func confirm(cmd *cobra.Command, r *bufio.Reader, prompt string) bool {
	cmd.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(line) == "Y"
}
