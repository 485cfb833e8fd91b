package dungeon

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidParam is returned when dungeon generation parameters are out of
// range.
var ErrInvalidParam = errors.New("invalid dungeon parameter")

// Treasure is a treasure node with a gold-piece value.
type Treasure struct {
	ID int
	GP int
}

// Layout is a generated dungeon: rooms connected by corridors, with
// treasures placed into rooms. Corridors are stored once per pair; the
// stored graph leads both ways.
type Layout struct {
	Rooms     int
	Corridors [][2]int
	Treasures []Treasure
	Placement map[int]int // treasure ID -> room ID
}

// GenerateLayout builds a random dungeon with the given number of rooms.
// Treasure count is picked from [2, maxTreasures]; each treasure's value
// from [1, maxGP). The room graph starts complete and is thinned to roughly
// twice the room count without disconnecting any room.
func GenerateLayout(rooms, maxTreasures, maxGP int, rng *rand.Rand) (*Layout, error) {
	if rooms <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidParam)
	}
	if maxGP <= 1 {
		return nil, fmt.Errorf("%w: maxgp must be greater than 1", ErrInvalidParam)
	}
	if maxTreasures < 2 {
		return nil, fmt.Errorf("%w: max_treasures must be at least 2", ErrInvalidParam)
	}

	// complete graph over all rooms
	corridors := make([][2]int, 0, rooms*(rooms-1)/2)
	for a := 0; a < rooms; a++ {
		for b := a + 1; b < rooms; b++ {
			corridors = append(corridors, [2]int{a, b})
		}
	}

	degree := make([]int, rooms)
	for i := range degree {
		degree[i] = rooms - 1
	}

	// thin out random corridors, keeping every room reachable
	for len(corridors) > 2*rooms {
		i := rng.Intn(len(corridors))
		c := corridors[i]

		if degree[c[0]] > 1 && degree[c[1]] > 1 {
			degree[c[0]]--
			degree[c[1]]--
			corridors[i] = corridors[len(corridors)-1]
			corridors = corridors[:len(corridors)-1]
		}
	}

	count := 2 + rng.Intn(maxTreasures-1) // [2, maxTreasures]
	treasures := make([]Treasure, 0, count)
	placement := make(map[int]int, count)

	for id := 0; id < count; id++ {
		treasures = append(treasures, Treasure{
			ID: id,
			GP: 1 + rng.Intn(maxGP-1), // [1, maxGP)
		})
		placement[id] = rng.Intn(rooms)
	}

	return &Layout{
		Rooms:     rooms,
		Corridors: corridors,
		Treasures: treasures,
		Placement: placement,
	}, nil
}
