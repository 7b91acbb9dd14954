package rules

// MaxNeighbors is the size of the 3D Moore neighborhood
const MaxNeighbors = 26

// Outcome names which branch of the transition rule applied to a cell
type Outcome int

const (
	// StaysDead: a dead cell without exactly three neighbors
	StaysDead Outcome = iota
	// Birth: a dead cell with exactly three neighbors
	Birth
	// Underpopulation: a live cell with at most one neighbor
	Underpopulation
	// Survival: a live cell with two or three neighbors
	Survival
	// Overpopulation: a live cell with more than three neighbors
	Overpopulation
)

func (o Outcome) String() string {
	switch o {
	case StaysDead:
		return "stays-dead"
	case Birth:
		return "birth"
	case Underpopulation:
		return "underpopulation"
	case Survival:
		return "survival"
	case Overpopulation:
		return "overpopulation"
	}
	return "unknown"
}

// Alive reports whether the outcome leaves the cell alive
func (o Outcome) Alive() bool {
	return o == Birth || o == Survival
}

// Classify returns the rule branch for a cell with the given neighbor count
func Classify(neighbors int, alive bool) Outcome {
	if !alive {
		if neighbors == 3 {
			return Birth
		}
		return StaysDead
	}
	switch {
	case neighbors <= 1:
		return Underpopulation
	case neighbors <= 3:
		return Survival
	default:
		return Overpopulation
	}
}

/*
NextState applies the Game of Life rules over the 26-cell Moore neighborhood.

Survive on 2 or 3 neighbors, birth on exactly 3: (alive && neighbors == 2) || neighbors == 3
*/
func NextState(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
