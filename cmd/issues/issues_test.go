package issues

import (
	"strings"
	"testing"

	"github.com/alan/nu-tracker/internal/commands"
	"github.com/alan/nu-tracker/internal/commands/commandstest"
	"github.com/alan/nu-tracker/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const actionsOutput = `[
	{"number": 2, "title": "Later action", "body": "Due: 2027-06-01", "labels": [{"name": "action"}],
	 "assignees": [{"login": "matatk"}], "repository": {"name": "apa", "nameWithOwner": "w3c/apa"}},
	{"number": 1, "title": "Undated action", "body": "Please do this", "labels": [{"name": "action"}],
	 "assignees": [], "repository": {"name": "apa", "nameWithOwner": "w3c/apa"}}
]`

func TestNewIssuesCmd(t *testing.T) {
	base := commandstest.NewBase(t, "[]")
	issuesCmd := NewIssuesCmd(base.BaseCommand)

	assert.Equal(t, "issues", issuesCmd.Use)
	for _, name := range []string{"group", "tf", "all-tfs", "main", "assignee", "no-assignee", "label", "closed", "report", "actions"} {
		assert.NotNil(t, issuesCmd.Flags().Lookup(name), "missing flag %s", name)
	}

	actionsCmd := NewActionsCmd(base.BaseCommand)
	assert.Nil(t, actionsCmd.Flags().Lookup("actions"))
}

func TestIssuesCmd_DelegatesTable(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewIssuesCmd(base.BaseCommand), "-g", "-m", "-l", "agenda", "-U")

	require.NoError(t, err)
	require.Len(t, base.Exec.Calls, 1)
	assert.Equal(t, []string{
		"gh", "search", "issues", "--repo", "w3c/apa", "--label", "agenda",
		"--state", "open", "--no-assignee", "--", "-label:action",
	}, base.Exec.Calls[0])
}

func TestIssuesCmd_IncludeActions(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewIssuesCmd(base.BaseCommand), "-t", "pronunciation", "-a", "-c", "-r", "web")

	require.NoError(t, err)
	require.Len(t, base.Exec.Calls, 1)
	assert.Equal(t, []string{"gh", "search", "issues", "--repo", "w3c/pronunciation", "--web"}, base.Exec.Calls[0])
}

func TestIssuesCmd_RequiresRepoSelection(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewIssuesCmd(base.BaseCommand), "-m")

	require.Error(t, err)
	assert.Empty(t, base.Exec.Calls)
}

func TestIssuesCmd_UnknownTaskForce(t *testing.T) {
	base := commandstest.NewBase(t, "")

	err := commandstest.Execute(NewIssuesCmd(base.BaseCommand), "-t", "nope")

	var tfErr *commands.UnknownTaskForceError
	require.ErrorAs(t, err, &tfErr)
	assert.Contains(t, tfErr.Known, "rqtf")
	assert.Empty(t, base.Exec.Calls)
}

func TestActionsCmd(t *testing.T) {
	base := commandstest.NewBase(t, actionsOutput)

	err := commandstest.Execute(NewActionsCmd(base.BaseCommand), "-g", "-m", "-r", "table", "-r", "agenda")

	require.NoError(t, err)
	require.Len(t, base.Exec.Calls, 1, "issues are fetched once for both formats")

	out := base.Out.String()
	assert.Contains(t, out, "Showing 2 actions")
	assert.Less(t, strings.Index(out, "Undated action"), strings.Index(out, "Later action"))
	assert.Contains(t, out, "1. Undated action https://github.com/w3c/apa/issues/1")
	assert.Contains(t, out, "2. Later action https://github.com/w3c/apa/issues/2 (due 2027-06-01)")
	assert.Contains(t, base.Err.String(), "Unable to identify due date for request #1: 'Undated action'")
}

func TestActionsCmd_UnsupportedFormat(t *testing.T) {
	base := commandstest.NewBase(t, actionsOutput)

	err := commandstest.Execute(NewActionsCmd(base.BaseCommand), "-g", "-r", "pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), report.FormatNames())
	assert.Empty(t, base.Exec.Calls)
}
