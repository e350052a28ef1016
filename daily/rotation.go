package daily

// The rotation uses a linear-congruential generator seeded from the date key
// so that every device computes the same shuffle for the same day without
// coordination. The recurrence is a wire contract shared with the web client;
// changing it would desynchronize rotations mid-day.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

type lcg struct {
	seed int64
}

func newLCG(key Day) *lcg {
	var sum int64
	for _, c := range []byte(key) {
		sum += int64(c)
	}
	return &lcg{seed: sum}
}

// drawIndex returns the next shuffle index in [0, n).
func (g *lcg) drawIndex(n int) int {
	g.seed = (g.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	// integer form of floor(seed/modulus * n); exact because seed*n fits int64
	return int(g.seed * int64(n) / lcgModulus)
}

// GenerateDailyGames returns the day's rotation: a seeded Fisher-Yates shuffle
// of the catalog truncated to RotationSize, every slot at level 1. The same
// key always yields the same sequence.
func GenerateDailyGames(key Day) []GameAssignment {
	deck := make([]GameID, len(Catalog))
	copy(deck, Catalog)

	g := newLCG(key)
	for i := len(deck) - 1; i > 0; i-- {
		j := g.drawIndex(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	games := make([]GameAssignment, RotationSize)
	for i := 0; i < RotationSize; i++ {
		games[i] = GameAssignment{GameID: deck[i], Level: 1}
	}
	return games
}
