package tui

type state int

const (
	inputState state = iota
	resolvingState
	resultsState
	errorState
)
