package srs

// Params defines all configurable parameters for the scheduling algorithm
type Params struct {
	// Difficulty limits applied after every update
	MinDifficulty float64
	MaxDifficulty float64

	// Difficulty adjustments per result; partial answers leave difficulty alone
	CorrectDifficultyStep   float64
	IncorrectDifficultyStep float64

	// Intervals (days) for the first and second correct review
	FirstReviewInterval  int
	SecondReviewInterval int

	// Interval for later correct reviews: round(IntervalBase * (EaseBase + EaseCoefficient * (EasePivot - difficulty)^2))
	IntervalBase    float64
	EaseBase        float64
	EaseCoefficient float64
	EasePivot       float64

	// Multiplier applied to IntervalBase on a partial answer, floored at one day
	PartialIntervalMultiplier float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	MinDifficulty float64
	MaxDifficulty float64

	CorrectDifficultyStep   float64
	IncorrectDifficultyStep float64

	FirstReviewInterval  int
	SecondReviewInterval int

	IntervalBase    float64
	EaseBase        float64
	EaseCoefficient float64
	EasePivot       float64

	PartialIntervalMultiplier float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinDifficulty: 0.1,
		MaxDifficulty: 1.0,

		CorrectDifficultyStep:   0.1,
		IncorrectDifficultyStep: 0.2,

		FirstReviewInterval:  1,
		SecondReviewInterval: 6,

		// The base is a constant, not the previous interval, so spacing
		// plateaus after the second correct review.
		IntervalBase:    1,
		EaseBase:        2.5,
		EaseCoefficient: 0.13,
		EasePivot:       5,

		PartialIntervalMultiplier: 0.5,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override difficulty limits if provided
	if config.MinDifficulty > 0 {
		params.MinDifficulty = config.MinDifficulty
	}
	if config.MaxDifficulty > 0 {
		params.MaxDifficulty = config.MaxDifficulty
	}

	// Override difficulty steps if provided
	if config.CorrectDifficultyStep > 0 {
		params.CorrectDifficultyStep = config.CorrectDifficultyStep
	}
	if config.IncorrectDifficultyStep > 0 {
		params.IncorrectDifficultyStep = config.IncorrectDifficultyStep
	}

	// Override early intervals if provided
	if config.FirstReviewInterval > 0 {
		params.FirstReviewInterval = config.FirstReviewInterval
	}
	if config.SecondReviewInterval > 0 {
		params.SecondReviewInterval = config.SecondReviewInterval
	}

	// Override interval formula terms if provided
	if config.IntervalBase > 0 {
		params.IntervalBase = config.IntervalBase
	}
	if config.EaseBase > 0 {
		params.EaseBase = config.EaseBase
	}
	if config.EaseCoefficient > 0 {
		params.EaseCoefficient = config.EaseCoefficient
	}
	if config.EasePivot > 0 {
		params.EasePivot = config.EasePivot
	}
	if config.PartialIntervalMultiplier > 0 {
		params.PartialIntervalMultiplier = config.PartialIntervalMultiplier
	}

	return params
}
