package game

// EvaluateStickLead scores a state by how far the player to move is ahead in
// shedding sticks, mapped to a pseudo win probability in [0, 1].
func EvaluateStickLead(s State) float64 {
	if s.IsTerminal() {
		win, _ := s.TerminalValue()
		return win
	}
	// Fewer sticks in hand is better
	return (normalize(float64(s.Theirs), float64(s.Mine)) + 1) / 2
}

// EvaluateLidPressure also accounts for how risky the next roll is: a fuller
// lid makes it more likely to take a stick back and lose the turn.
func EvaluateLidPressure(rules Rules) Evaluate {
	return func(s State) float64 {
		if s.IsTerminal() {
			win, _ := s.TerminalValue()
			return win
		}
		lead := EvaluateStickLead(s)
		risk := float64(s.Lid) / float64(rules.Faces())
		return lead*(1-risk) + 0.5*risk
	}
}

// LookAhead returns the expected evaluation of each action one roll ahead,
// scoring a passed turn as the complement of the opponent's evaluation.
func LookAhead(rules Rules, evaluate Evaluate, s State) (cont, stop float64) {
	for _, outcome := range rules.Outcomes(s) {
		if outcome.PassesTurn {
			cont += outcome.Probability * (1 - evaluate(outcome.Next))
		} else {
			cont += outcome.Probability * evaluate(outcome.Next)
		}
	}
	stop = 1 - evaluate(s.OpponentView())
	return cont, stop
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
