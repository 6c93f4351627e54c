package strategy

import "math/rand/v2"

// motivationalQuotes is the fixed pool appended to daily summaries when
// IncludeMotivation is on.
var motivationalQuotes = []string{
	"Small steps every day add up to big results.",
	"Consistency beats intensity.",
	"You don't have to be perfect, just persistent.",
	"The best time to start was yesterday. The next best time is now.",
	"Every completed habit is a vote for the person you want to become.",
	"Momentum is built one day at a time.",
	"Showing up is half the battle.",
	"Progress, not perfection.",
}

// randomQuote picks one motivational line uniformly at random.
func randomQuote() string {
	return motivationalQuotes[rand.IntN(len(motivationalQuotes))]
}
