package timing

import (
	"sort"
	"strings"

	"github.com/vuhoanglam/recipe-flow/internal/recipe"
)

// minStepDuration is the shortest window a step may occupy, in seconds.
const minStepDuration = 5

// PredictStepTimes derives a start/end window for every instruction
// from its video references. Technique sightings anchor a step more
// reliably than ingredient mentions, so they win when present. Steps
// without any sighting are interpolated between their anchored
// neighbors, or spread evenly when nothing is anchored at all. The
// final pass forces windows into step order with no overlap and at
// least minStepDuration each; the last step runs to the end of the
// video.
func PredictStepTimes(instructions []recipe.Instruction, videoDuration int) {
	n := len(instructions)
	if n == 0 {
		return
	}

	sort.SliceStable(instructions, func(i, j int) bool {
		return instructions[i].Step < instructions[j].Step
	})

	// First pass: raw starts from references, techniques first.
	raw := make([]int, n)
	known := make([]bool, n)
	for i := range instructions {
		if ts, ok := rawStart(&instructions[i]); ok {
			raw[i] = ts
			known[i] = true
		}
	}

	// Second pass: fill the gaps.
	if !anyKnown(known) {
		stepDur := videoDuration / n
		for i := range raw {
			raw[i] = i * stepDur
		}
	} else {
		avgDur := videoDuration / n
		for i := range raw {
			if known[i] {
				continue
			}
			prevIdx, prevOK := lastKnownBefore(known, i)
			nextIdx, nextOK := firstKnownAfter(known, i)
			switch {
			case prevOK && nextOK:
				ratio := float64(i-prevIdx) / float64(nextIdx-prevIdx)
				raw[i] = raw[prevIdx] + int(ratio*float64(raw[nextIdx]-raw[prevIdx]))
			case prevOK:
				start := raw[prevIdx] + avgDur*(i-prevIdx)
				if cap := videoDuration - minStepDuration; start > cap {
					start = cap
				}
				raw[i] = start
			case nextOK:
				start := raw[nextIdx] - avgDur*(nextIdx-i)
				if start < 0 {
					start = 0
				}
				raw[i] = start
			}
		}
	}

	// Third pass: sequential, non-overlapping windows.
	prevEnd := 0
	for i := range instructions {
		start := raw[i]
		if start < prevEnd {
			start = prevEnd
		}
		if start < 0 {
			start = 0
		}

		var end int
		if i < n-1 {
			end = raw[i+1]
			if end < start+minStepDuration {
				end = start + minStepDuration
			}
		} else {
			end = videoDuration
		}
		if end-start < minStepDuration {
			end = start + minStepDuration
			if end > videoDuration {
				end = videoDuration
			}
		}

		instructions[i].PredictedTime = &recipe.PredictedTime{
			StartSeconds: start,
			EndSeconds:   end,
		}
		prevEnd = end
	}
}

// rawStart picks the step's anchor timestamp: the earliest technique
// reference when one exists, otherwise the earliest reference of any
// kind.
func rawStart(inst *recipe.Instruction) (int, bool) {
	if len(inst.VideoReferences) == 0 {
		return 0, false
	}

	techniques := map[string]bool{}
	if inst.Keywords != nil {
		for _, t := range inst.Keywords.Techniques {
			techniques[strings.ToLower(t)] = true
		}
	}

	best := -1
	techBest := -1
	for _, ref := range inst.VideoReferences {
		ts := ref.TimestampSeconds
		if best == -1 || ts < best {
			best = ts
		}
		if techniques[strings.ToLower(ref.Keyword)] && (techBest == -1 || ts < techBest) {
			techBest = ts
		}
	}
	if techBest >= 0 {
		return techBest, true
	}
	return best, true
}

func anyKnown(known []bool) bool {
	for _, k := range known {
		if k {
			return true
		}
	}
	return false
}

func lastKnownBefore(known []bool, i int) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if known[j] {
			return j, true
		}
	}
	return 0, false
}

func firstKnownAfter(known []bool, i int) (int, bool) {
	for j := i + 1; j < len(known); j++ {
		if known[j] {
			return j, true
		}
	}
	return 0, false
}
