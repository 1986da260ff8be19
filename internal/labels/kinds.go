package labels

// Comments is the status taxonomy for comment review requests
var Comments = MustTaxonomy("comments",
	Flag{Name: "pending", Label: "pending", Char: 'P', Conflicts: []string{"needs-resolution"}},
	Flag{Name: "close", Label: "close?", Char: 'C'},
	// tracker and needs-resolution are prefixed (e.g. "a11y-") in the source group's repo
	Flag{Name: "tracker", Label: "tracker", Char: 'T', Conflicts: []string{"needs-resolution"}},
	Flag{Name: "needs-resolution", Label: "needs-resolution", Char: 'N', Conflicts: []string{"pending", "tracker"}},
	Flag{Name: "recycle", Label: "recycle", Char: 'R'},
	Flag{Name: "advice-requested", Label: "advice-requested", Char: 'A'},
	Flag{Name: "needs-attention", Label: "needs-attention", Char: 'X'},
)

// Designs is the status taxonomy for design review requests
var Designs = MustTaxonomy("designs",
	Flag{Name: "progress-untriaged", Label: "Progress: untriaged", Char: 'U'},
	Flag{Name: "progress-in-progress", Label: "Progress: in progress", Char: 'i'},
	Flag{Name: "progress-pending-external-feedback", Label: "Progress: pending external feedback", Char: 'x'},
)

// Charters is the status taxonomy for charter review requests
var Charters = MustTaxonomy("charters",
	Flag{Name: "accessibility-completed", Label: "Accessibility review completed", Char: 'a'},
	Flag{Name: "accessibility-needs-resolution", Label: "a11y-needs-resolution", Char: 'A'},
	Flag{Name: "internationalization-completed", Label: "Internationalization review completed", Char: 'i'},
	Flag{Name: "internationalization-needs-resolution", Label: "i18n-needs-resolution", Char: 'I'},
	Flag{Name: "privacy-completed", Label: "privacy review completed", Char: 'p'},
	Flag{Name: "privacy-needs-resolution", Label: "privacy-needs-resolution", Char: 'P'},
	Flag{Name: "security-completed", Label: "Security review completed", Char: 's'},
	Flag{Name: "security-needs-resolution", Label: "security-needs-resolution", Char: 'S'},
	Flag{Name: "tag-completed", Label: "TAG review completed", Char: 't'},
	Flag{Name: "tag-needs-resolution", Label: "tag-needs-resolution", Char: 'T'},
)
