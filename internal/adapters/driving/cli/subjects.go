package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	subjectsDepartment string
	subjectsYear       string
	subjectsExclude    []string
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Browse the subject catalogue",
	Long: `Lists subjects from the content API through the taxonomy cascade.

Without flags, all subjects are listed. With --department, the available
year levels for that department are shown. With both --department and
--year, the selectable subjects are shown; --exclude drops specific
subject IDs from the list.`,
	RunE: runSubjects,
}

func init() {
	subjectsCmd.Flags().StringVarP(&subjectsDepartment, "department", "d", "", "filter by department")
	subjectsCmd.Flags().StringVarP(&subjectsYear, "year", "y", "", "filter by year level (requires --department)")
	subjectsCmd.Flags().StringSliceVar(&subjectsExclude, "exclude", nil, "subject IDs to exclude")
	rootCmd.AddCommand(subjectsCmd)
}

func runSubjects(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	ctx := cmd.Context()

	switch {
	case subjectsDepartment == "" && subjectsYear != "":
		return errors.New("--year requires --department")

	case subjectsDepartment == "":
		subjects, err := catalogService.Subjects(ctx)
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		if len(subjects) == 0 {
			cmd.Println("No subjects found.")
			return nil
		}
		for _, s := range subjects {
			cmd.Printf("%-26s %-16s %-10s %s\n", s.ID, s.Department, s.YearLevel, s.OptionLabel())
		}

	case subjectsYear == "":
		years, err := catalogService.Years(ctx, subjectsDepartment)
		if err != nil {
			return fmt.Errorf("list year levels: %w", err)
		}
		if len(years) == 0 {
			cmd.Printf("No year levels found for department %q.\n", subjectsDepartment)
			return nil
		}
		cmd.Printf("Year levels in %s:\n", subjectsDepartment)
		for _, y := range years {
			cmd.Printf("  %s\n", y)
		}

	default:
		options, err := catalogService.SubjectChoices(ctx, subjectsDepartment, subjectsYear, subjectsExclude)
		if err != nil {
			return fmt.Errorf("list subject choices: %w", err)
		}
		if len(options) == 0 {
			cmd.Printf("No subjects found for %s / %s.\n", subjectsDepartment, subjectsYear)
			return nil
		}
		for _, o := range options {
			cmd.Printf("%-26s %s\n", o.Value, o.Label)
		}
	}

	return nil
}
