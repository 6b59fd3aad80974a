package game

import (
	"fmt"
	"strconv"
	"strings"
)

// IsTerminal reports whether the game is already decided in s.
func (s State) IsTerminal() bool {
	return s.Mine == 0 || s.Theirs == 0
}

// Won reports whether the player to move has already shed all sticks.
func (s State) Won() bool {
	return s.Mine == 0
}

// Lost reports whether the opponent has already shed all sticks.
func (s State) Lost() bool {
	return s.Mine > 0 && s.Theirs == 0
}

// TerminalValue returns the fixed win and completion probabilities of a
// decided state. Both actions share these values.
func (s State) TerminalValue() (win, done float64) {
	switch {
	case s.Won():
		return 1, 1
	case s.Lost():
		return 0, 1
	}
	panic(fmt.Sprintf("state %s is not terminal", s))
}

// OpponentView is the state the opponent faces once the turn passes.
func (s State) OpponentView() State {
	return State{Lid: s.Lid, Mine: s.Theirs, Theirs: s.Mine}
}

// Sticks is the number of sticks still in play (lid and both hands).
func (s State) Sticks() int {
	return s.Lid + s.Mine + s.Theirs
}

// String formats s in mine/lid/theirs notation, e.g. "1/4/1" for one stick in
// hand, four in the lid and one with the opponent.
func (s State) String() string {
	return fmt.Sprintf("%d/%d/%d", s.Mine, s.Lid, s.Theirs)
}

// ParseState parses the mine/lid/theirs notation produced by String.
func ParseState(text string) (State, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return State{}, fmt.Errorf("state %q: expected mine/lid/theirs", text)
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return State{}, fmt.Errorf("state %q: %w", text, err)
		}
		if v < 0 {
			return State{}, fmt.Errorf("state %q: negative stick count", text)
		}
		values[i] = v
	}
	return State{Mine: values[0], Lid: values[1], Theirs: values[2]}, nil
}
