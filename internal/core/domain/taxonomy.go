package domain

import "sort"

// DepartmentOptions returns the unique departments across all subjects.
// Subjects with an empty department are skipped so the list never carries
// an empty option. The result is sorted for stable display.
func DepartmentOptions(subjects []Subject) []string {
	return uniqueSorted(subjects, func(s Subject) string {
		return s.Department
	}, func(Subject) bool { return true })
}

// YearOptions returns the unique year levels among subjects in the given
// department. An unset department yields no options.
func YearOptions(subjects []Subject, department string) []string {
	if department == "" {
		return nil
	}
	return uniqueSorted(subjects, func(s Subject) string {
		return s.YearLevel
	}, func(s Subject) bool {
		return s.Department == department
	})
}

// SubjectOptions returns one option per subject matching both department and
// year level, minus any subject whose ID appears in excludeIDs. Exclusion is
// how a course builder avoids offering the same subject twice.
func SubjectOptions(subjects []Subject, department, yearLevel string, excludeIDs []string) []SubjectOption {
	if department == "" || yearLevel == "" {
		return nil
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	var options []SubjectOption
	for _, s := range subjects {
		if s.Department != department || s.YearLevel != yearLevel {
			continue
		}
		if _, skip := excluded[s.ID]; skip {
			continue
		}
		options = append(options, SubjectOption{Value: s.ID, Label: s.OptionLabel()})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}

// uniqueSorted collects the distinct non-empty values of field over subjects
// passing the filter.
func uniqueSorted(subjects []Subject, field func(Subject) string, match func(Subject) bool) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, s := range subjects {
		v := field(s)
		if v == "" || !match(s) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
