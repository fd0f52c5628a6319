package steps

// ============================================================
// Step-Reveal Sequence
// ============================================================

// Definition is one reveal step of a diagram.
type Definition struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	LabelTranslated string `json:"labelTranslated"`
}

// Sequence is a bounded cursor over an ordered list of reveal steps. A step
// is visible once the cursor has reached it; exactly one step is current.
// The cursor is externally drivable via Seek and replayable in both
// directions.
type Sequence struct {
	defs    []Definition
	index   map[string]int
	current int
}

func New(defs ...Definition) *Sequence {
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		index[d.ID] = i
	}
	return &Sequence{
		defs:  defs,
		index: index,
	}
}

func (s *Sequence) Total() int {
	return len(s.defs)
}

func (s *Sequence) Current() int {
	return s.current
}

func (s *Sequence) Definitions() []Definition {
	return s.defs
}

// Seek moves the cursor to i, clamped into [0, Total-1], and returns the
// resulting position.
func (s *Sequence) Seek(i int) int {
	s.current = Clamp(i, len(s.defs))
	return s.current
}

// Next advances the cursor by one step. At the last step it is a no-op.
func (s *Sequence) Next() int {
	return s.Seek(s.current + 1)
}

// Prev moves the cursor back by one step. At the first step it is a no-op.
func (s *Sequence) Prev() int {
	return s.Seek(s.current - 1)
}

// Visible reports whether the step with the given ID has been revealed.
func (s *Sequence) Visible(id string) bool {
	i, ok := s.index[id]
	return ok && i <= s.current
}

// IsCurrent reports whether the step with the given ID is the spotlighted one.
func (s *Sequence) IsCurrent(id string) bool {
	i, ok := s.index[id]
	return ok && i == s.current
}

// Clamp bounds a step index into [0, total-1]. An empty sequence clamps to 0.
func Clamp(i, total int) int {
	if i < 0 || total == 0 {
		return 0
	}
	if i > total-1 {
		return total - 1
	}
	return i
}
