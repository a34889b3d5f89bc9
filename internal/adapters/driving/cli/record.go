package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage imported records",
	Long:  `Import, list, inspect, or delete records in the local store.`,
}

var recordImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a record file into the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordImport,
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported records",
	Args:  cobra.NoArgs,
	RunE:  runRecordList,
}

var recordShowCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Show record info",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordShow,
}

var recordCodesCmd = &cobra.Command{
	Use:   "codes [record-id]",
	Short: "List the ICD-10 codes annotated on a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordCodes,
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete [record-id]",
	Short: "Delete a record from the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordDelete,
}

func init() {
	recordCmd.AddCommand(recordImportCmd)
	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordShowCmd)
	recordCmd.AddCommand(recordCodesCmd)
	recordCmd.AddCommand(recordDeleteCmd)
	rootCmd.AddCommand(recordCmd)
}

func runRecordImport(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	rec, err := recordService.Import(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to import record: %w", err)
	}

	cmd.Printf("Imported record %s (%d notes, %d annotations)\n",
		rec.ID, len(rec.Notes), rec.AnnotationCount())
	return nil
}

func runRecordList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	summaries, err := recordService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Println("No records imported. Use 'chartlens record import' to add one.")
		return nil
	}

	for _, sum := range summaries {
		cmd.Printf("  %s\n", sum.ID)
		cmd.Printf("    Notes:       %d\n", sum.NoteCount)
		cmd.Printf("    Annotations: %d\n", sum.AnnotationCount)
		cmd.Printf("    Imported:    %s\n", humanize.Time(sum.ImportedAt))
		cmd.Println()
	}

	cmd.Printf("Total: %d records\n", len(summaries))
	return nil
}

func runRecordShow(cmd *cobra.Command, args []string) error {
	if recordService == nil || annotationIndexer == nil {
		return errors.New("record service not configured")
	}

	rec, err := recordService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	groups, _ := annotationIndexer.Build(*rec)

	cmd.Printf("Record: %s\n\n", rec.ID)
	cmd.Printf("  Admission:   %s\n", rec.HadmID)
	cmd.Printf("  Notes:       %d\n", len(rec.Notes))
	cmd.Printf("  Annotations: %d\n", rec.AnnotationCount())
	cmd.Printf("  Codes:       %d\n", len(groups))

	if len(rec.Notes) > 0 {
		cmd.Println("\n  Note categories:")
		for i, note := range rec.Notes {
			cmd.Printf("    [%d] %s\n", i+1, note.Category)
		}
	}

	return nil
}

func runRecordCodes(cmd *cobra.Command, args []string) error {
	if recordService == nil || annotationIndexer == nil {
		return errors.New("record service not configured")
	}

	rec, err := recordService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	groups, _ := annotationIndexer.Build(*rec)
	if len(groups) == 0 {
		cmd.Println("No annotations on this record.")
		return nil
	}

	for _, g := range groups {
		cmd.Printf("  %s\n", GroupLabel(g))
	}
	cmd.Printf("\nTotal: %d codes\n", len(groups))
	return nil
}

func runRecordDelete(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	cmd.Printf("Record %s deleted.\n", args[0])
	return nil
}
