package comments

import (
	"strings"
	"testing"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/commands/commandstest"
	"github.com/alan/nu-tracker/internal/labels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentsOutput = `[
	{"number": 12, "title": "Dialog focus", "body": "§ https://github.com/whatwg/html/pull/8352",
	 "labels": [{"name": "s:html"}, {"name": "whatwg"}, {"name": "pending"}],
	 "assignees": [{"login": "matatk"}], "author": {"login": "w3cbot"},
	 "repository": {"name": "a11y-review", "nameWithOwner": "w3c/a11y-review"}},
	{"number": 13, "title": "Our own request", "body": "No link",
	 "labels": [{"name": "s:css-view-transitions"}, {"name": "wg:css"}, {"name": "pending"}, {"name": "needs-resolution"}],
	 "assignees": [], "author": {"login": "matatk"},
	 "repository": {"name": "a11y-review", "nameWithOwner": "w3c/a11y-review"}}
]`

func TestCommentsCmd_ListFlags(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand), "-f")

	require.NoError(t, err)
	assert.Equal(t, labels.Comments.Describe()+"\n", base.Out.String())
	assert.Empty(t, base.Exec.Calls)
}

func TestCommentsCmd_Table(t *testing.T) {
	base := commandstest.NewBase(t, commentsOutput)

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand), "-s", "P", "-S", "C", "-c", "id,title,status,source")

	require.NoError(t, err)
	require.Len(t, base.Exec.Calls, 1)
	call := strings.Join(base.Exec.Calls[0], " ")
	assert.Contains(t, call, "--repo w3c/a11y-review --label pending --state open")
	assert.Contains(t, call, "-- -label:close?")

	out := base.Out.String()
	assert.Contains(t, out, "Showing 2 comments")
	assert.Contains(t, out, "Requests with invalid statuses due to conflicting labels:")
	assert.Contains(t, out, "whatwg/html#8352")
	assert.Contains(t, out, "SOURCE")
	assert.NotContains(t, out, "ASSIGNEES")
}

func TestCommentsCmd_OriginFilter(t *testing.T) {
	base := commandstest.NewBase(t, commentsOutput)

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand), "--our", "-r", "meeting")

	require.NoError(t, err)
	out := base.Out.String()
	assert.Contains(t, out, "Showing 2 comments")
	assert.Contains(t, out, "subtopic: Our own request")
	assert.NotContains(t, out, "Dialog focus")
}

func TestCommentsCmd_OpenRequest(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand), "42")

	require.NoError(t, err)
	assert.Equal(t, "Opening: https://github.com/w3c/a11y-review/issues/42\n", base.Out.String())
	require.Len(t, base.Exec.Calls, 1)
	assert.Equal(t, []string{"gh", "browse", "42", "--repo", "w3c/a11y-review"}, base.Exec.Calls[0])
}

func TestCommentsCmd_NotHorizontalReview(t *testing.T) {
	base := commandstest.NewBase(t, "")
	*base.AsGroup = "ag"

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand))

	assert.ErrorIs(t, err, commands.ErrNotHorizontalReview)
	assert.Empty(t, base.Exec.Calls)
}

func TestCommentsCmd_AgendaUnsupported(t *testing.T) {
	base := commandstest.NewBase(t, commentsOutput)

	err := commandstest.Execute(NewCommentsCmd(base.BaseCommand), "-r", "agenda")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"agenda" format is not supported for comments`)
	assert.Empty(t, base.Exec.Calls)
}

func TestDesignsCmd(t *testing.T) {
	base := commandstest.NewBase(t, "[]")
	designsCmd := NewDesignsCmd(base.BaseCommand)

	assert.Nil(t, designsCmd.Flags().Lookup("our"))

	err := commandstest.Execute(designsCmd, "-p", "html", "-u", "@me")

	require.NoError(t, err)
	require.Len(t, base.Exec.Calls, 1)
	call := strings.Join(base.Exec.Calls[0], " ")
	assert.Contains(t, call, "--repo w3ctag/design-reviews --label s:html --state open --assignee @me")
	assert.Equal(t, "No designs found\n", base.Out.String())
}

func TestDesignsCmd_InvalidColumn(t *testing.T) {
	base := commandstest.NewBase(t, "[]")

	err := commandstest.Execute(NewDesignsCmd(base.BaseCommand), "-c", "our")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid field "our"`)
}
