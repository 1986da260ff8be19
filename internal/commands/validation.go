package commands

import (
	"fmt"

	"github.com/alan/nu-tracker/internal/labels"
	"github.com/alan/nu-tracker/internal/review"
)

// StatusArgs holds the status flag filters shared by comments, designs and charters
type StatusArgs struct {
	ListFlags bool
	Status    string
	NotStatus string
}

// Labels converts the -s and -S flag letters to the labels they stand for
func (a StatusArgs) Labels(taxonomy *labels.Taxonomy) (status, notStatus []string, err error) {
	status, err = taxonomy.ParseFlags(a.Status)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid status: %w", err)
	}

	notStatus, err = taxonomy.ParseFlags(a.NotStatus)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid not-status: %w", err)
	}

	return status, notStatus, nil
}

// ResolveColumns picks the table columns: those given on the command line, else those in the
// settings file, else the defaults
func ResolveColumns(flagColumns, settingsColumns []string, valid, defaults []review.Field) ([]review.Field, error) {
	switch {
	case len(flagColumns) > 0:
		return review.ParseFields(flagColumns, valid)
	case len(settingsColumns) > 0:
		columns, err := review.ParseFields(settingsColumns, valid)
		if err != nil {
			return nil, fmt.Errorf("invalid columns in settings file: %w", err)
		}
		return columns, nil
	default:
		return defaults, nil
	}
}
