package generate

import "math/rand"

// RoomRange bounds the size of rectangular rooms.
type RoomRange struct {
	Count                int
	WidthMin, WidthMax   int
	HeightMin, HeightMax int
}

// PolygonRange bounds the shape of regular-polygon rooms.
type PolygonRange struct {
	Count                int
	SidesMin, SidesMax   int
	RadiusMin, RadiusMax int
}

// Config drives every generation mode. Ranges are inclusive.
type Config struct {
	// Classic mode.
	NoiseChance float64 // chance that a leftover wall is opened

	// Backrooms mode.
	FillRatio           float64 // stop growing once this share of cells is visited
	GrowthPasses        int     // maximum number of independent growth seeds
	StopCollisionChance float64 // chance that growth stops at an earlier pass

	Rooms            RoomRange
	PillarRooms      RoomRange
	PillarSpacingMin int
	PillarSpacingMax int
	PolygonRooms     PolygonRange

	StraightCorridors  bool
	CorridorSpacingMin int
	CorridorSpacingMax int
	CorridorWidthMin   int
	CorridorWidthMax   int
	CorridorChance     float64

	// Chunked mode.
	ChunkSize       int
	ChunkRoomChance float64
	ChunkRoomMin    int
	ChunkRoomMax    int
	ChunkRoomStep   int
	ChunkHallStep   int
}

// DefaultConfig returns the tuning used for the dense backrooms look.
func DefaultConfig() Config {
	return Config{
		NoiseChance: 0.05,

		FillRatio:           0.4,
		GrowthPasses:        20,
		StopCollisionChance: 0.8,

		Rooms:            RoomRange{Count: 15, WidthMin: 3, WidthMax: 8, HeightMin: 3, HeightMax: 8},
		PillarRooms:      RoomRange{Count: 8, WidthMin: 4, WidthMax: 12, HeightMin: 4, HeightMax: 12},
		PillarSpacingMin: 2,
		PillarSpacingMax: 4,
		PolygonRooms:     PolygonRange{Count: 5, SidesMin: 3, SidesMax: 6, RadiusMin: 2, RadiusMax: 6},

		CorridorSpacingMin: 4,
		CorridorSpacingMax: 8,
		CorridorWidthMin:   1,
		CorridorWidthMax:   2,
		CorridorChance:     0.7,

		ChunkSize:       16,
		ChunkRoomChance: 0.7,
		ChunkRoomMin:    3,
		ChunkRoomMax:    8,
		ChunkRoomStep:   4,
		ChunkHallStep:   8,
	}
}

// between draws uniformly from [lo, hi]. An empty range yields lo.
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
