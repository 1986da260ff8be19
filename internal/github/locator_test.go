package github

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Locator
		wantErr  bool
	}{
		{
			name:     "valid",
			input:    "matatk/landmarks#1",
			expected: Locator{Owner: "matatk", Repo: "landmarks", Number: 1},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "no hash", input: "/", wantErr: true},
		{name: "empty owner", input: "/#", wantErr: true},
		{name: "empty repo", input: "moo/#", wantErr: true},
		{name: "empty number", input: "moo/moo#", wantErr: true},
		{name: "zero number", input: "matatk/landmarks#0", wantErr: true},
		{name: "negative number", input: "matatk/landmarks#-3", wantErr: true},
		{name: "non-numeric number", input: "matatk/landmarks#one", wantErr: true},
		{name: "hash before slash", input: "matatk#1/landmarks", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator, err := ParseLocator(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidLocator))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, locator)
		})
	}
}

func TestLocator_StringRoundTrips(t *testing.T) {
	for _, input := range []string{"w3c/apa#42", "matatk/landmarks#1", "w3c/a11y-request#123"} {
		locator, err := ParseLocator(input)
		require.NoError(t, err)
		assert.Equal(t, input, locator.String())
	}
}

func TestLocator_URL(t *testing.T) {
	locator, err := ParseLocator("matatk/landmarks#1")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/matatk/landmarks/issues/1", locator.URL())
	assert.Equal(t, "matatk/landmarks", locator.NameWithOwner())
}

func TestIssue_Helpers(t *testing.T) {
	issue := Issue{
		Number:     7,
		Labels:     []Label{{Name: "action"}, {Name: "s:html"}},
		Repository: Repository{Name: "apa", NameWithOwner: "w3c/apa"},
	}

	assert.Equal(t, Unassigned, issue.AssigneeList())
	assert.Equal(t, []string{"action", "s:html"}, issue.LabelNames())
	assert.Equal(t, "w3c/apa#7", issue.Locator().String())

	issue.Assignees = []User{{Login: "matatk"}, {Login: "jasonjgw"}}
	assert.Equal(t, "matatk,jasonjgw", issue.AssigneeList())
}
