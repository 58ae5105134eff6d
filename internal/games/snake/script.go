package snake

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidScript is wrapped by every ParseScript error.
var ErrInvalidScript = errors.New("invalid script")

// Move requests direction Dir just before tick Tick (1-based) runs.
type Move struct {
	Tick uint64
	Dir  Direction
}

// Script is a list of moves ordered by tick.
type Script []Move

// ParseScript reads a comma separated list of "tick:direction" entries,
// e.g. "3:down, 10:left". An empty string is an empty script.
func ParseScript(s string) (Script, error) {
	var script Script
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tickStr, dirStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("snake: move %q: missing ':': %w", entry, ErrInvalidScript)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("snake: move %q: tick must be a positive integer: %w", entry, ErrInvalidScript)
		}
		dir, err := ParseDirection(dirStr)
		if err != nil {
			return nil, fmt.Errorf("snake: move %q: %v: %w", entry, err, ErrInvalidScript)
		}

		script = append(script, Move{Tick: tick, Dir: dir})
	}

	sort.SliceStable(script, func(i, j int) bool {
		return script[i].Tick < script[j].Tick
	})
	return script, nil
}

// RunScript plays a headless game for at most maxTicks ticks and returns
// the final snapshot. The run ends early when the snake dies.
func RunScript(board Board, seed int64, script Script, maxTicks uint64) Snapshot {
	e := NewEngine(board, seed)

	next := 0
	for e.Running() && e.Ticks() < maxTicks {
		upcoming := e.Ticks() + 1
		for next < len(script) && script[next].Tick <= upcoming {
			e.SetDirection(script[next].Dir)
			next++
		}
		e.Tick()
	}

	return e.Snapshot()
}
