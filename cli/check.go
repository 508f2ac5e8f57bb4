package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CheckResult summarizes a content check.
type CheckResult struct {
	Valid    bool     `json:"valid"`
	Posts    int      `json:"posts"`
	Projects int      `json:"projects"`
	Problems []string `json:"problems,omitempty"`
}

func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate content definitions",
		Long: `Load posts, projects and the profile and report every problem found:
duplicate or non URL-safe slugs, empty titles, unparseable dates and malformed YAML.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	var result CheckResult
	store, err := loadStore(opts)
	if err != nil {
		for _, problem := range flatten(err) {
			result.Problems = append(result.Problems, problem.Error())
		}
	} else {
		result.Valid = true
		result.Posts = store.Posts().Len()
		result.Projects = store.Projects().Len()
	}

	if opts.Format == "json" {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(out, "ok: %d posts, %d projects\n", result.Posts, result.Projects)
	} else {
		for _, problem := range result.Problems {
			fmt.Fprintf(out, "problem: %s\n", problem)
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d content problem(s)", len(result.Problems)))
	}
	return nil
}
