package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
)

var errNoShots = errors.New("no shots given")

// shot is a pull offset from the anchor in field pixels.
type shot struct {
	dx, dy float64
}

func (s shot) vec() dmath.Vec2 {
	return dmath.Vec2{X: s.dx, Y: s.dy}
}

// parseShots reads "dx,dy;dx,dy;...".
func parseShots(s string) ([]shot, error) {
	var shots []shot
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("shot %q: want dx,dy", part)
		}
		dx, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		dy, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		shots = append(shots, shot{dx: dx, dy: dy})
	}
	if len(shots) == 0 {
		return nil, errNoShots
	}
	return shots, nil
}
