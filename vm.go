package tnfa

// thread is a logical NFA state parked at a consuming instruction (or
// Match), together with the capture-group boundaries recorded along
// the epsilon path that reached it.
type thread struct {
	ip    int
	saves []int
}

// vm executes a compiled Program's bytecode against a subject using a
// two-list threaded construction: clist holds every thread live at
// the current input position, nlist is filled while stepping clist
// and becomes clist for the next position. Both lists are held in
// priority order, index 0 highest, which is the actual semantics of
// the engine, not an implementation detail, since it decides which
// candidate wins under ambiguity.
type vm struct {
	prog    *Program
	subject []byte
	cur     Cursor

	// visited and generation implement the epsilon-closure guard: a
	// program address is folded into a list at most once per closure
	// build, no matter how many split/save/jump paths reach it. That
	// is what keeps a zero-width repeat such as (a*)* from spawning a
	// thread every time its body's split loops back on itself:
	// generation is bumped once per closure build, and addThread
	// refuses to redescend into an address already stamped with the
	// current generation.
	visited    []int
	generation int
}

func newVM(prog *Program, subject []byte) *vm {
	return &vm{
		prog:    prog,
		subject: subject,
		cur:     NewCursor(subject),
		visited: make([]int, len(prog.bytecode)),
	}
}

func (m *vm) currRune() (rune, bool) { return m.cur.Peek() }

func (m *vm) prevRune() (rune, bool) {
	c := m.cur
	return c.Prev()
}

func (m *vm) isLineStart() bool {
	if m.cur.AtStart() {
		return true
	}
	return m.subject[m.cur.Pos()-1] == '\n'
}

func (m *vm) isLineEnd() bool {
	if m.cur.AtEnd() {
		return true
	}
	return m.subject[m.cur.Pos()] == '\n'
}

func (m *vm) isWordBoundary() bool {
	prev, prevOK := m.prevRune()
	curr, currOK := m.currRune()
	return (prevOK && isWord(prev)) != (currOK && isWord(curr))
}

func cloneSaves(saves []int) []int {
	return append([]int(nil), saves...)
}

// addThread resolves ip's epsilon closure into list: it follows
// Jump/Split/Save/assertion opcodes immediately, in priority order,
// and appends a thread only once it reaches a consuming instruction
// or Match. ip already stamped with the current generation is
// dropped rather than redescended into, which bounds a single closure
// build to at most one thread per program address regardless of how
// many epsilon paths (including cycles) the bytecode contains.
func (m *vm) addThread(list []thread, ip int, saves []int) []thread {
	if m.visited[ip] == m.generation {
		return list
	}
	m.visited[ip] = m.generation

	switch m.prog.bytecode[ip] {
	case OpJump:
		target := int(getOffset(m.prog.bytecode[ip+1:]))
		return m.addThread(list, target, saves)

	case OpSplitPrioritizeParent:
		target := int(getOffset(m.prog.bytecode[ip+1:]))
		nextIP := ip + 1 + offsetSize
		list = m.addThread(list, nextIP, saves)
		return m.addThread(list, target, saves)

	case OpSplitPrioritizeChild:
		target := int(getOffset(m.prog.bytecode[ip+1:]))
		nextIP := ip + 1 + offsetSize
		list = m.addThread(list, target, saves)
		return m.addThread(list, nextIP, saves)

	case OpSave:
		slot := m.prog.bytecode[ip+1]
		next := cloneSaves(saves)
		next[slot] = m.cur.Pos()
		return m.addThread(list, ip+2, next)

	case OpLineStart:
		if !m.isLineStart() {
			return list
		}
		return m.addThread(list, ip+1, saves)

	case OpLineEnd:
		if !m.isLineEnd() {
			return list
		}
		return m.addThread(list, ip+1, saves)

	case OpWordBoundary:
		if !m.isWordBoundary() {
			return list
		}
		return m.addThread(list, ip+1, saves)

	case OpNotWordBoundary:
		if m.isWordBoundary() {
			return list
		}
		return m.addThread(list, ip+1, saves)

	case OpSubjectBegin:
		if m.cur.Pos() != 0 {
			return list
		}
		return m.addThread(list, ip+1, saves)

	case OpSubjectEnd:
		if m.cur.Pos() != len(m.subject) {
			return list
		}
		return m.addThread(list, ip+1, saves)

	default:
		// OpLiteral, OpAnyChar, OpMatcher, OpMatch: none of these are
		// resolved further here, they park the thread for stepPosition.
		return append(list, thread{ip: ip, saves: saves})
	}
}

// execResult is the internal outcome of run: whether any thread
// reached an accepting Match, and if so, the captures of the
// highest-priority (or, in longest mode, longest-lived) one.
type execResult struct {
	matched bool
	saves   []int
}

// run seeds clist at the mode-appropriate entry point and advances
// the subject one codepoint at a time, resolving each position's
// closure and stepping every consuming thread in priority order,
// exactly as described by the engine's execution loop: seed, then
// step-and-build-next per codepoint, including the position at the
// subject's end where no thread can consume but a parked Match still
// resolves.
func (m *vm) run(opts ExecOptions) execResult {
	startIP := 0
	if opts.Mode == ModeFull {
		startIP = searchPrefixSize
	}

	initSaves := make([]int, m.prog.saveSlotCount)
	for i := range initSaves {
		initSaves[i] = -1
	}

	m.generation++
	clist := m.addThread(nil, startIP, initSaves)

	var result execResult
	for {
		nlist, done := m.stepPosition(opts, clist, &result)
		if done {
			return result
		}
		if m.cur.AtEnd() || len(nlist) == 0 {
			return result
		}
		m.cur.Next()
		clist = nlist
	}
}

// stepPosition processes every thread in clist in priority order at
// the current cursor position. A thread parked at Match either
// accepts (recording result and, unless Longest is set, telling run
// to return immediately) or, in full-match mode short of the
// subject's end, is simply dropped as a premature match. A thread
// parked at a consuming opcode that matches the current rune folds
// its successor's closure into nlist, which becomes clist for the
// next position; that closure is resolved at the offset just past the
// consumed rune, so its Saves and assertions see the next position.
func (m *vm) stepPosition(opts ExecOptions, clist []thread, result *execResult) (nlist []thread, done bool) {
	m.generation++
	cur, hasCur := m.currRune()
	here := m.cur
	after := m.cur
	after.Next()
	follow := func(ip int, saves []int) {
		m.cur = after
		nlist = m.addThread(nlist, ip, saves)
		m.cur = here
	}

	for _, t := range clist {
		switch m.prog.bytecode[t.ip] {
		case OpMatch:
			if opts.Mode == ModeFull && !m.cur.AtEnd() {
				continue
			}
			result.matched = true
			result.saves = t.saves
			if !opts.Longest {
				return nil, true
			}
			// Every thread after t in clist is strictly lower
			// priority and loses to this match outright; drop them
			// rather than let them extend nlist further.
			return nlist, false

		case OpLiteral:
			if !hasCur {
				continue
			}
			cp, width := decodeCodepoint(m.prog.bytecode[t.ip+1:])
			if cur != cp {
				continue
			}
			follow(t.ip+1+width, t.saves)

		case OpAnyChar:
			if !hasCur {
				continue
			}
			follow(t.ip+1, t.saves)

		case OpMatcher:
			if !hasCur {
				continue
			}
			id := m.prog.bytecode[t.ip+1]
			if !m.prog.matchers[id].Match(cur) {
				continue
			}
			follow(t.ip+2, t.saves)
		}
	}
	return nlist, false
}
