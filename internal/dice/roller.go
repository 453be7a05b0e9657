// Package dice implements a seedable dice-notation roller with an
// opaque state round-trip so rolls stay reproducible across save/load.
package dice

import (
	crand "crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/tavernkeep/dungeonmaster/internal/errors"
)

// notationRe matches <count>d<sides>[+|-<modifier>], no whitespace.
var notationRe = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Result captures one resolved roll
type Result struct {
	// Notation is the expression that produced the result, e.g. "2d6+3"
	Notation string
	// Rolls holds the individual die results in roll order, each in [1, sides]
	Rolls []int
	// Modifier is the flat bonus or penalty parsed from the notation
	Modifier int
	// Total is the sum of Rolls plus Modifier
	Total int
}

// Roller rolls dice notation against an injected pseudo-random stream.
// Each roller owns its own generator; nothing is shared globally, so a
// fixed seed and call sequence always reproduce the same results.
//
// A Roller is not safe for concurrent use. Each director instance owns
// exactly one.
type Roller struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewRoller creates a roller seeded with the given value
func NewRoller(seed uint64) *Roller {
	src := rand.NewPCG(seed, 0)
	return &Roller{
		src: src,
		rng: rand.New(src),
	}
}

// NewSeed generates a high-entropy seed from crypto/rand for sessions
// that do not need reproducibility.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Roll parses dice notation like "2d6+3" and rolls it. Count and sides
// must be positive. Malformed notation returns an InvalidDiceExpression
// error before any randomness is consumed.
func (r *Roller) Roll(notation string) (*Result, error) {
	m := notationRe.FindStringSubmatch(notation)
	if m == nil {
		return nil, errors.InvalidDiceExpressionf("invalid dice expression: %q", notation)
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count < 1 {
		return nil, errors.InvalidDiceExpressionf("invalid dice expression: %q: count must be positive", notation)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 1 {
		return nil, errors.InvalidDiceExpressionf("invalid dice expression: %q: sides must be positive", notation)
	}
	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return nil, errors.InvalidDiceExpressionf("invalid dice expression: %q: bad modifier", notation)
		}
	}

	rolls := make([]int, count)
	total := modifier
	for i := range rolls {
		rolls[i] = r.rng.IntN(sides) + 1
		total += rolls[i]
	}

	return &Result{
		Notation: notation,
		Rolls:    rolls,
		Modifier: modifier,
		Total:    total,
	}, nil
}

// State returns the generator's internal state as an opaque string
// suitable for embedding in a snapshot. Restoring it with SetState
// resumes the roll stream exactly where it left off.
func (r *Roller) State() (string, error) {
	data, err := r.src.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "failed to capture rng state")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// SetState restores generator state previously captured with State
func (r *Roller) SetState(state string) error {
	data, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeSnapshotFormat, "rng state is not valid base64")
	}
	if err := r.src.UnmarshalBinary(data); err != nil {
		return errors.WrapWithCode(err, errors.CodeSnapshotFormat, "rng state does not decode")
	}
	return nil
}
