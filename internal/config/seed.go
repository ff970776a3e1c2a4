package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// Seed reads SWEEPER_SEED. ok is false when it is not set.
func Seed() (seed uint64, ok bool, err error) {
	s, ok := os.LookupEnv("SWEEPER_SEED")
	if !ok || s == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid SWEEPER_SEED %q: %w", s, err)
	}
	return seed, true, nil
}

// NewRand returns a fixed-seed source when seed is non-zero and a randomly
// seeded one otherwise.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
