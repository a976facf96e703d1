package ranking

import "time"

// Weights are the fixed category weights. They must sum to exactly 1.0.
type Weights struct {
	Trading    float64
	Reputation float64
	Community  float64
	Activity   float64
	Quality    float64
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.Trading + w.Reputation + w.Community + w.Activity + w.Quality
}

type Config struct {
	Weights Weights

	// Trading
	CompletedExchangePoints int
	RejectedExchangePenalty int

	// Reputation
	PositiveReviewPoints    int
	PositiveRatingThreshold int
	DetailedReviewPoints    int
	DetailedCommentMinLen   int
	AverageRatingMultiplier float64

	// Community
	ActiveConversationPoints int
	ActiveConversationCap    int
	MessagePoints            int
	MessagePointsCap         int
	ActiveMessageThreshold   int

	// Activity
	LoginStreakPoints    int
	LoginStreakPointsCap int
	BookAddedPoints      int
	WishlistItemPoints   int
	CompleteProfileBonus int

	// Quality
	AchievementPointsFactor  float64
	CompletionRateMultiplier float64

	// Decay
	InactivityThreshold time.Duration
	DecayFactor         float64
}

func NewDefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Trading:    0.30,
			Reputation: 0.25,
			Community:  0.20,
			Activity:   0.15,
			Quality:    0.10,
		},

		CompletedExchangePoints: 50,
		RejectedExchangePenalty: 50,

		PositiveReviewPoints:    10,
		PositiveRatingThreshold: 4,
		DetailedReviewPoints:    25,
		DetailedCommentMinLen:   50,
		AverageRatingMultiplier: 200,

		ActiveConversationPoints: 10,
		ActiveConversationCap:    500,
		MessagePoints:            2,
		MessagePointsCap:         500,
		ActiveMessageThreshold:   2, // active means strictly more messages than this

		LoginStreakPoints:    2,
		LoginStreakPointsCap: 730, // a full year of daily logins
		BookAddedPoints:      10,
		WishlistItemPoints:   5,
		CompleteProfileBonus: 100,

		AchievementPointsFactor:  0.5,
		CompletionRateMultiplier: 300,

		InactivityThreshold: 30 * 24 * time.Hour,
		DecayFactor:         0.95,
	}
}
