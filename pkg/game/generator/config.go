package generator

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
)

const (
	ErrTypeInvalidConfig   = "invalid-config"
	ErrTypeUnknownStrategy = "unknown-strategy"
	ErrTypeUnknownMetric   = "unknown-metric"
)

const (
	minDimension = 3
	maxDimension = 2000
	maxRoomSize  = 50
	maxLevels    = 5000
	maxRooms     = 50000
	maxWorkers   = 64
	maxTreeDepth = 10
)

// Split policies for the free list strategies.
const (
	SplitPolicyDominant    = "dominant"
	SplitPolicyAlternating = "alternating"
)

// Config holds the parameters shared by every level of a generation run.
type Config struct {
	Seed            uint32        `json:"seed"`
	Width           uint32        `json:"width"`
	Height          uint32        `json:"height"`
	MinRoomSize     uint32        `json:"min_room_size"`
	MaxRoomSize     uint32        `json:"max_room_size"`
	NumLevels       int           `json:"num_levels"`
	NumRooms        int           `json:"num_rooms"`
	MaxRoomAttempts int           `json:"max_room_attempts"`
	NumWorkers      int           `json:"num_workers"`
	TreeDepth       int           `json:"tree_depth"`
	Split           string        `json:"split"`
	Rand            rng.Generator `json:"-"`
}

// DefaultConfig returns the configuration used when no option overrides it.
func DefaultConfig() Config {
	return Config{
		Seed:            42,
		Width:           50,
		Height:          50,
		MinRoomSize:     2,
		MaxRoomSize:     8,
		NumLevels:       10,
		NumRooms:        99,
		MaxRoomAttempts: 50000,
		NumWorkers:      1,
		TreeDepth:       3,
		Split:           SplitPolicyDominant,
		Rand:            rng.CRand,
	}
}

// RoomSizeVariance returns the number of distinct room sizes per axis.
func (c Config) RoomSizeVariance() uint32 {
	return c.MaxRoomSize - c.MinRoomSize
}

// MinUsableSize returns the smallest free window that can host a room: the
// smallest room plus a one cell gap on each side.
func (c Config) MinUsableSize() uint32 {
	return c.MinRoomSize + 2
}

// Validate checks the configuration against the supported ranges.
func (c Config) Validate() error {
	switch {
	case c.Width < minDimension || c.Width > maxDimension:
		return invalidConfig("width out of range", "width", c.Width)
	case c.Height < minDimension || c.Height > maxDimension:
		return invalidConfig("height out of range", "height", c.Height)
	case c.MinRoomSize < 1 || c.MinRoomSize > maxRoomSize:
		return invalidConfig("min room size out of range", "min_room_size", c.MinRoomSize)
	case c.MaxRoomSize < 1 || c.MaxRoomSize > maxRoomSize:
		return invalidConfig("max room size out of range", "max_room_size", c.MaxRoomSize)
	case c.MinRoomSize >= c.MaxRoomSize:
		return invalidConfig("min room size must be smaller than max room size", "min_room_size", c.MinRoomSize)
	case c.MaxRoomSize >= c.Width || c.MaxRoomSize >= c.Height:
		return invalidConfig("max room size must be smaller than the level", "max_room_size", c.MaxRoomSize)
	case c.NumLevels < 1 || c.NumLevels > maxLevels:
		return invalidConfig("level count out of range", "num_levels", c.NumLevels)
	case c.NumRooms < 1 || c.NumRooms > maxRooms:
		return invalidConfig("room count out of range", "num_rooms", c.NumRooms)
	case c.NumWorkers < 1 || c.NumWorkers > maxWorkers:
		return invalidConfig("worker count out of range", "num_workers", c.NumWorkers)
	case c.NumWorkers > c.NumLevels:
		return invalidConfig("more workers than levels", "num_workers", c.NumWorkers)
	case c.MaxRoomAttempts < 1:
		return invalidConfig("max room attempts must be positive", "max_room_attempts", c.MaxRoomAttempts)
	case c.TreeDepth < 0 || c.TreeDepth > maxTreeDepth:
		return invalidConfig("tree depth out of range", "tree_depth", c.TreeDepth)
	case c.Split != "" && c.Split != SplitPolicyDominant && c.Split != SplitPolicyAlternating:
		return invalidConfig("unknown split policy", "split", c.Split)
	case c.Rand == nil:
		return invalidConfig("no random generator", "rand", nil)
	}
	return nil
}

func invalidConfig(msg, key string, value any) error {
	return errors.New(msg).
		WithType(ErrTypeInvalidConfig).
		WithTag(key, value)
}
