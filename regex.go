package tnfa

// Mode selects how Execute anchors a match attempt.
type Mode int

const (
	// ModeSearch allows a match to start at any offset in the subject;
	// the compiled search prefix is used to try every starting point,
	// earliest first.
	ModeSearch Mode = iota
	// ModeFull requires the match to cover the entire subject.
	ModeFull
)

// ExecOptions controls Execute's matching strategy.
type ExecOptions struct {
	Mode Mode
	// Longest continues scanning after the first accepting match, in
	// case a still-live, equal-or-higher-priority thread later reaches
	// Match at a longer span, instead of returning on the first hit.
	Longest bool
}

// Group is one capture group's byte-offset span within the subject
// passed to Execute. A group that did not participate in the match
// has Start == -1.
type Group struct {
	Start, End int
}

// Participated reports whether this group captured a span.
func (g Group) Participated() bool { return g.Start != -1 }

// Slice returns the captured substring of subject. It panics if the
// group did not participate; check Participated first.
func (g Group) Slice(subject []byte) []byte { return subject[g.Start:g.End] }

// MatchResult is the outcome of Execute. Groups is nil when Matched is
// false; otherwise Groups[0] is the whole match and Groups[g] for g>0
// is the g-th capture group, in source order of its opening '('.
type MatchResult struct {
	Matched bool
	Groups  []Group
}

// Compile parses pattern and compiles it into a Program, ready to be
// run with Execute. The syntax accepted is documented on the package.
func Compile(pattern string) (*Program, error) {
	parsed, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return compileParsedRegex(parsed), nil
}

// MustCompile is like Compile but panics if pattern fails to parse. It
// is meant for initializing package-level Programs from string
// constants known to be valid at compile time.
func MustCompile(pattern string) *Program {
	p, err := Compile(pattern)
	if err != nil {
		panic("tnfa: MustCompile: " + err.Error())
	}
	return p
}

// Validate parses pattern without producing a Program. It never
// panics; a non-nil error carries the same positional diagnostic
// Compile would return, for a host that wants to surface a diagnostic
// without committing to a full compile.
func Validate(pattern string) error {
	_, err := parsePattern(pattern)
	return err
}

// CaptureCount returns the number of capture groups p has, including
// the implicit group 0 covering the whole match.
func (p *Program) CaptureCount() int { return p.saveSlotCount / 2 }

// Execute runs p against subject and reports whether it matched.
func (p *Program) Execute(subject []byte, opts ExecOptions) MatchResult {
	m := newVM(p, subject)
	res := m.run(opts)
	if !res.matched {
		return MatchResult{Matched: false}
	}
	groups := make([]Group, p.CaptureCount())
	for g := range groups {
		groups[g] = Group{Start: res.saves[2*g], End: res.saves[2*g+1]}
	}
	return MatchResult{Matched: true, Groups: groups}
}
