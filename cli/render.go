package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/metadata"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/render"
)

// RenderResult is a post's blocks and derived metadata.
type RenderResult struct {
	Slug     string                 `json:"slug"`
	Blocks   []models.Block         `json:"blocks"`
	Metadata models.DisplayMetadata `json:"metadata"`
}

func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var wpm int

	cmd := &cobra.Command{
		Use:           "render <slug>",
		Short:         "Print the blocks and reading metadata of a post",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], wpm, cmd)
		},
	}

	cmd.Flags().IntVar(&wpm, "wpm", metadata.DefaultWordsPerMinute, "reading speed in words per minute")

	return cmd
}

func runRender(opts *RootOptions, slug string, wpm int, cmd *cobra.Command) error {
	if wpm <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--wpm must be positive, got %d", wpm))
	}

	store, err := loadStore(opts)
	if err != nil {
		return WrapExitError(ExitFailure, "loading content", err)
	}

	post, err := store.Posts().Get(slug)
	if err != nil {
		if errs.IsNotFound(err) {
			return NewExitError(ExitFailure, fmt.Sprintf("no post with slug %q", slug))
		}
		return err
	}

	result := RenderResult{
		Slug:     post.Slug,
		Blocks:   render.Blocks(post.Body),
		Metadata: metadata.NewCalculator(wpm).Compute(post.Body),
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	writeBlocksText(cmd.OutOrStdout(), result)
	return nil
}

func writeBlocksText(w io.Writer, result RenderResult) {
	fmt.Fprintf(w, "%s: %d words, %d min read\n\n", result.Slug, result.Metadata.WordCount, result.Metadata.ReadingTimeMinutes)
	for _, b := range result.Blocks {
		switch b.Kind {
		case models.KindHeading:
			fmt.Fprintf(w, "h%d  %s\n", b.Level, b.Text)
		case models.KindLabeledListItem:
			fmt.Fprintf(w, "li  %s: %s\n", b.Label, b.Text)
		case models.KindListItem:
			fmt.Fprintf(w, "li  %s\n", b.Text)
		default:
			fmt.Fprintf(w, "p   %s\n", b.Text)
		}
	}
}
