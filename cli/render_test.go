package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestRender_Text(t *testing.T) {
	out, err := execute(t, "render", "react-19-new-features")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "react-19-new-features: "))
	assert.Contains(t, lines[0], "min read")
	assert.Equal(t, "h1  React 19: A Deep Dive into New Features", lines[2])
	assert.Contains(t, out, "li  useSignal: A new primitive for state management with fine-grained reactivity\n")
}

func TestRender_JSON(t *testing.T) {
	out, err := execute(t, "render", "next-js-15-whats-new", "--format", "json", "--wpm", "100")
	require.NoError(t, err)

	var result RenderResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "next-js-15-whats-new", result.Slug)
	require.NotEmpty(t, result.Blocks)
	assert.Equal(t, models.KindHeading, result.Blocks[0].Kind)
	assert.Equal(t, (result.Metadata.WordCount+99)/100, result.Metadata.ReadingTimeMinutes)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"unknown slug", []string{"render", "missing-post"}, ExitFailure, `no post with slug "missing-post"`},
		{"bad wpm", []string{"render", "react-19-new-features", "--wpm", "0"}, ExitCommandError, "--wpm must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := execute(t, "render")
	assert.Error(t, err)
}
