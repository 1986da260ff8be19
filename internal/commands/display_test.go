package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alan/nu-tracker/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBrowser struct {
	opened []github.Locator
	err    error
}

func (b *fakeBrowser) Browse(_ context.Context, locator github.Locator) error {
	b.opened = append(b.opened, locator)
	return b.err
}

func TestOpenLocator(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOut    string
		wantOpened int
	}{
		{
			name:       "valid locator",
			text:       "w3c/apa#42",
			wantOut:    "Opening: https://github.com/w3c/apa/issues/42\n",
			wantOpened: 1,
		},
		{
			name:    "missing number",
			text:    "w3c/apa",
			wantOut: "Invalid issue locator: w3c/apa\n",
		},
		{
			name:    "non-numeric number",
			text:    "w3c/apa#x",
			wantOut: "Invalid issue locator: w3c/apa#x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			browser := &fakeBrowser{}

			err := OpenLocator(context.Background(), browser, &out, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Len(t, browser.opened, tt.wantOpened)
		})
	}
}

func TestOpenRequest(t *testing.T) {
	var out bytes.Buffer
	browser := &fakeBrowser{}

	require.NoError(t, OpenRequest(context.Background(), browser, &out, "w3c/a11y-request", 7))

	require.Len(t, browser.opened, 1)
	assert.Equal(t, "w3c/a11y-request#7", browser.opened[0].String())
	assert.Equal(t, "Opening: https://github.com/w3c/a11y-request/issues/7\n", out.String())
}

func TestOpenIssue_BrowseError(t *testing.T) {
	var out bytes.Buffer
	browser := &fakeBrowser{err: github.ErrGhFailed}
	locator := github.Locator{Owner: "w3c", Repo: "apa", Number: 1}

	err := OpenIssue(context.Background(), browser, &out, locator)

	assert.True(t, errors.Is(err, github.ErrGhFailed))
	assert.Contains(t, err.Error(), "failed to open w3c/apa#1")
}

func TestDisplayNotice(t *testing.T) {
	var out bytes.Buffer

	DisplayNotice(&out, "Default group is: '%s'", "apa")
	DisplaySuccess(&out, "Default group is now '%s'", "ag")

	assert.Contains(t, out.String(), "Default group is: 'apa'")
	assert.Contains(t, out.String(), "Default group is now 'ag'")
}
