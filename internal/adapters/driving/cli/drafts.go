package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage locally-saved composing sessions",
	RunE:  runDraftsList,
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts",
	RunE:  runDraftsList,
}

var draftsResumeCmd = &cobra.Command{
	Use:   "resume <draft-id>",
	Short: "Reopen a draft in the compose wizard",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftsResume,
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <draft-id>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftsDelete,
}

func init() {
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsResumeCmd)
	draftsCmd.AddCommand(draftsDeleteCmd)
	rootCmd.AddCommand(draftsCmd)
}

func runDraftsList(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	drafts, err := draftService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list drafts: %w", err)
	}
	if len(drafts) == 0 {
		cmd.Println("No drafts.")
		return nil
	}

	for _, d := range drafts {
		cmd.Printf("%-38s %-8s %-24s %d part(s), updated %s\n",
			d.ID, d.Flow, d.Name, len(d.Batch.Parts), d.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runDraftsResume(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	draft, err := draftService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load draft %s: %w", args[0], err)
	}

	mode := wizardCreate
	if draft.Flow == domain.FlowEdit {
		mode = wizardEdit
	}
	batch := draft.Batch
	return runComposeWizard(cmd, mode, &batch, draft.ID)
}

func runDraftsDelete(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if err := draftService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete draft %s: %w", args[0], err)
	}
	cmd.Printf("Draft %s deleted.\n", args[0])
	return nil
}
