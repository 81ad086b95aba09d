package prompt

import "fmt"

// Scripted is a Prompter that replays canned answers in order. It is
// used by tests and exercises exactly the same call sequence as the
// Terminal prompter.
type Scripted struct {
	// Answers are consumed one per Ask call.
	Answers []string

	// Confirms are consumed one per Confirm call.
	Confirms []bool

	// Selections are consumed one per Select call.
	Selections [][]string

	askIdx     int
	confirmIdx int
	selectIdx  int
}

// Ask implements Prompter.
func (s *Scripted) Ask(question, def string) (string, error) {
	if s.askIdx >= len(s.Answers) {
		return "", fmt.Errorf("unexpected Ask(%q)", question)
	}
	answer := s.Answers[s.askIdx]
	s.askIdx++
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(question string, def bool) (bool, error) {
	if s.confirmIdx >= len(s.Confirms) {
		return false, fmt.Errorf("unexpected Confirm(%q)", question)
	}
	answer := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return answer, nil
}

// Select implements Prompter.
func (s *Scripted) Select(question string, options []string) ([]string, error) {
	if s.selectIdx >= len(s.Selections) {
		return nil, fmt.Errorf("unexpected Select(%q)", question)
	}
	selection := s.Selections[s.selectIdx]
	s.selectIdx++
	return selection, nil
}
