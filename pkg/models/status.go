package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile status values. Stage-bearing states are generated per stage number so
// the same state machine serves chains of any length.
const (
	TileStatusPending = "pending"
	TileStatusFailed  = "failed"
)

// TileStageProcessing returns the status of a tile whose stage-k prediction
// is in flight.
func TileStageProcessing(stage int) string {
	return fmt.Sprintf("stage%d_processing", stage)
}

// TileStageComplete returns the status of a tile that finished stage k.
func TileStageComplete(stage int) string {
	return fmt.Sprintf("stage%d_complete", stage)
}

// ParseTileStage extracts the stage number and phase from a stage-bearing
// tile status. ok is false for pending/failed.
func ParseTileStage(status string) (stage int, processing bool, ok bool) {
	rest, found := strings.CutPrefix(status, "stage")
	if !found {
		return 0, false, false
	}
	num, phase, found := strings.Cut(rest, "_")
	if !found {
		return 0, false, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, false, false
	}
	switch phase {
	case "processing":
		return n, true, true
	case "complete":
		return n, false, true
	default:
		return 0, false, false
	}
}

// TileStatusesAtOrBeyond lists every status that implies stage k completed:
// stage{k}_complete plus all later stage states up to totalStages.
func TileStatusesAtOrBeyond(stage, totalStages int) []string {
	statuses := []string{TileStageComplete(stage)}
	for k := stage + 1; k <= totalStages; k++ {
		statuses = append(statuses, TileStageProcessing(k), TileStageComplete(k))
	}
	return statuses
}

// TileStageReached reports whether a tile status implies stage k finished.
func TileStageReached(status string, stage int) bool {
	n, processing, ok := ParseTileStage(status)
	if !ok {
		return false
	}
	if processing {
		return n > stage
	}
	return n >= stage
}
