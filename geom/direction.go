package geom

// Direction is one of the four compass headings.
type Direction uint8

const (
	// East is the zero value and the default heading.
	East Direction = iota
	West
	North
	South
)

// deltas holds the unit step for each Direction. Screen orientation:
// North decreases y, South increases it.
var deltas = [...][2]int{
	East:  {1, 0},
	West:  {-1, 0},
	North: {0, -1},
	South: {0, 1},
}

var names = [...]string{
	East:  "East",
	West:  "West",
	North: "North",
	South: "South",
}

// Directions returns the four headings in N, W, S, E sweep order.
func Directions() []Direction {
	return []Direction{North, West, South, East}
}

// Delta returns the unit vector for d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	default:
		return North
	}
}

// TurnLeft rotates d a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case East:
		return North
	case North:
		return West
	case West:
		return South
	default:
		return East
	}
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return "Direction(?)"
}
