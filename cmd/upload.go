package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uploadFileList string

var uploadCmd = &cobra.Command{
	Use:   "upload <record-id> [file...]",
	Short: "Upload files to a draft record",
	Long: `Upload local files into a record's file bucket, one request per file.

Files can be given as arguments or listed one per line in a file passed
with --file-list. A file that fails to upload is reported and the rest are
still attempted.

Examples:
  zenmeta upload 123456 data.nc readme.txt --portal zenodo
  zenmeta upload 123456 --file-list files.txt --production`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFileList, "file-list", "", "File containing paths to upload, one per line")
}

func runUpload(cmd *cobra.Command, args []string) error {
	recordID := args[0]
	paths := args[1:]

	if uploadFileList != "" {
		listed, err := readFileList(uploadFileList)
		if err != nil {
			return err
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files to upload")
	}

	client, err := newDepositClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	bucket, err := client.Bucket(ctx, recordID)
	if err != nil {
		return fmt.Errorf("resolving bucket for record %s: %w", recordID, err)
	}

	failed := 0
	for _, path := range paths {
		if err := client.UploadFile(ctx, bucket, path); err != nil {
			cmd.PrintErrf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		cmd.Printf("OK   %s\n", path)
	}
	cmd.Printf("%d of %d files uploaded\n", len(paths)-failed, len(paths))
	if failed > 0 {
		return fmt.Errorf("%d files failed", failed)
	}
	return nil
}

func readFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file list: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file list: %w", err)
	}
	return paths, nil
}
