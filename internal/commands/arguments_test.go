package commands

import (
	"testing"

	"github.com/alan/nu-tracker/internal/github"
)

func TestParseRequestNumber(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantOK  bool
		wantErr bool
	}{
		{name: "no arguments", args: nil},
		{name: "valid number", args: []string{"42"}, want: 42, wantOK: true},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseRequestNumber(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRequestNumber() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRequestNumber() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAssigneeArgs_Filter(t *testing.T) {
	tests := []struct {
		args AssigneeArgs
		want github.AssigneeFilter
	}{
		{args: AssigneeArgs{}, want: github.AnyAssignee()},
		{args: AssigneeArgs{NoAssignee: true}, want: github.NoAssignee()},
		{args: AssigneeArgs{User: "@me"}, want: github.AssignedTo("@me")},
	}

	for _, tt := range tests {
		if got := tt.args.Filter(); got != tt.want {
			t.Errorf("Filter() for %+v = %v, want %v", tt.args, got, tt.want)
		}
	}
}
