package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
	"github.com/edustack-labs/coursectl/internal/core/ports/driving"
)

var (
	uploadFile    string
	uploadConfirm bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Publish a new chapter of video parts",
	Long: `Publishes a new chapter to the content API.

With --file, the chapter is read from a TOML batch manifest and submitted
directly. Without it, an interactive wizard walks through subject
selection and part composition.

Parts are submitted one at a time, in order. If a part fails, the number
of parts already saved is reported so the remainder can be retried.`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "batch manifest (TOML)")
	uploadCmd.Flags().BoolVar(&uploadConfirm, "confirm", false, "ask for confirmation before submitting")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	if uploadFile == "" {
		return runComposeWizard(cmd, wizardCreate, nil, "")
	}

	batch, err := loadManifest(uploadFile)
	if err != nil {
		return err
	}

	opts := driving.PublishOptions{}
	confirm := uploadConfirm
	if !confirm && configStore != nil {
		confirm = configStore.GetBool(driven.ConfigKeyConfirmCreate)
	}
	if confirm {
		opts.Confirm = TerminalConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	created, err := publishService.Create(cmd.Context(), batch, opts)
	if err != nil {
		var partial *domain.PartialPublishError
		if errors.As(err, &partial) {
			cmd.PrintErrf("Saved %d of %d parts before the failure; the remaining parts were not submitted.\n",
				partial.Succeeded, partial.Total)
		}
		if errors.Is(err, domain.ErrPublishCancelled) {
			cmd.Println("Cancelled.")
			return nil
		}
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %d part(s) to chapter %q.\n", created, batch.ChapterName)
	return nil
}
