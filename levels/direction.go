package levels

import (
	"encoding/json"
	"fmt"
)

// Direction is one of the four facings. The zero value is Up.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionNames = [...]string{"UP", "RIGHT", "DOWN", "LEFT"}

// Directions lists the facings in clockwise order starting from Up.
var Directions = []Direction{DirUp, DirRight, DirDown, DirLeft}

func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Rotate returns the direction a quarter turn clockwise.
func (d Direction) Rotate() Direction {
	if !d.Valid() {
		return DirUp
	}
	return (d + 1) % 4
}

// Vector returns the unit grid step for the direction. Y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return DirUp, fmt.Errorf("levels: unknown direction %q", name)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("levels: invalid direction %d", int(d))
	}
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("levels: direction must be a string: %w", err)
	}
	v, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
