package tui

import "time"

type focusArea int

const (
	focusCountries focusArea = iota
	focusScenarios
	focusComposer
)

const heroTitle = "LexGuardian"

const heroTagline = "Empowering students with legal knowledge."

const composerPlaceholder = "e.g. 'Rights during campus protest'"

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

const quizUnanswered = -1

const timeBadgeUnit = time.Millisecond
