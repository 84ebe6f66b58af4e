package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edustack-labs/coursectl/internal/core/domain"
)

var editFile string

var editCmd = &cobra.Command{
	Use:   "edit <chapter-id>",
	Short: "Rework an existing chapter's video parts",
	Long: `Loads an existing chapter and replaces its parts in one aggregate write.

With --file, the new parts are read from a TOML batch manifest. Without
it, an interactive wizard opens on the chapter's current parts.

Parts present on the backend but absent from the submitted batch are
deleted by the backend. The update always asks for confirmation.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "batch manifest (TOML)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}
	chapterID := args[0]

	batch, err := publishService.Load(cmd.Context(), chapterID)
	if err != nil {
		return fmt.Errorf("load chapter %s: %w", chapterID, err)
	}

	if editFile == "" {
		return runComposeWizard(cmd, wizardEdit, batch, "")
	}

	replacement, err := loadManifest(editFile)
	if err != nil {
		return err
	}

	// The manifest replaces the parts; chapter identity and subject stay as
	// fetched unless the manifest overrides them.
	batch.Parts = replacement.Parts
	if replacement.ChapterName != "" {
		batch.ChapterName = replacement.ChapterName
	}
	if replacement.SubjectID != "" {
		batch.SubjectID = replacement.SubjectID
	}

	confirm := TerminalConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	if err := publishService.Update(cmd.Context(), batch, confirm); err != nil {
		if errors.Is(err, domain.ErrPublishCancelled) {
			cmd.Println("Cancelled.")
			return nil
		}
		return fmt.Errorf("edit failed: %w", err)
	}

	cmd.Printf("Chapter %q updated with %d part(s).\n", batch.ChapterName, len(batch.Parts))
	return nil
}
