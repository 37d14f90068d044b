package app

// DefaultWinningScore is the cumulative score at which a game ends, checked
// only at round boundaries.
const DefaultWinningScore = 800
