package labels

import "strings"

// OriginKind says what an origin label identifies
type OriginKind string

const (
	// OriginSpec identifies the spec an issue relates to
	OriginSpec OriginKind = "spec"
	// OriginGroup identifies the group an issue comes from
	OriginGroup OriginKind = "group"
)

// Origin is a value parsed from a prefixed label such as "s:html" or "wg:apa"
type Origin struct {
	Kind  OriginKind
	Value string
}

func (o Origin) String() string {
	return o.Value
}

// OriginParser recognises origin labels of one kind
type OriginParser struct {
	Kind     OriginKind
	Prefixes []string // text before the ':' separator, matched case-sensitively
	Whole    []string // labels that match in their entirety, with no prefix
}

// Parse extracts an origin from a label name
func (p OriginParser) Parse(label string) (Origin, bool) {
	for _, whole := range p.Whole {
		if label == whole {
			return Origin{Kind: p.Kind, Value: whole}, true
		}
	}

	prefix, value, found := strings.Cut(label, ":")
	if !found {
		return Origin{}, false
	}

	for _, accepted := range p.Prefixes {
		if prefix == accepted {
			value = strings.TrimSpace(value)
			if value == "" {
				return Origin{}, false
			}
			return Origin{Kind: p.Kind, Value: value}, true
		}
	}

	return Origin{}, false
}

// Origin parsers used by the review reports
var (
	CommentSpec  = OriginParser{Kind: OriginSpec, Prefixes: []string{"s"}}
	CommentGroup = OriginParser{Kind: OriginGroup, Prefixes: []string{"wg", "cg", "ig", "bg"}, Whole: []string{"whatwg"}}
	DesignSpec   = OriginParser{Kind: OriginSpec, Prefixes: []string{"s", "Topic"}}
	DesignGroup  = OriginParser{Kind: OriginGroup, Prefixes: []string{"wg", "cg", "ig", "bg", "Venue"}, Whole: []string{"whatwg"}}
)
