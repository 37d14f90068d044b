package domain

// Team is a partnership index, 0 or 1.
type Team int

// Other returns the opposing partnership.
func (t Team) Other() Team {
	return 1 - t
}

// Seat identifies one of the four chairs at the table as a (team, player)
// pair. Each team seats players 0 and 1.
type Seat struct {
	Team   Team `json:"team"`
	Player int  `json:"player"`
}

// SeatAt maps a table position 0..3 to its seat. Positions alternate team
// each step so that no partnership plays twice in a row within a trick:
// 0=t0p0, 1=t1p0, 2=t0p1, 3=t1p1.
func SeatAt(pos int) Seat {
	return Seat{Team: Team(pos % 2), Player: pos / 2}
}

// Index is the inverse of SeatAt.
func (s Seat) Index() int {
	return s.Player*2 + int(s.Team)
}

// NextSeat steps the fixed turn rotation t0p0 -> t1p0 -> t0p1 -> t1p1 -> t0p0.
func NextSeat(s Seat) Seat {
	return SeatAt((s.Index() + 1) % 4)
}
