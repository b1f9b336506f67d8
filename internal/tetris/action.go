package tetris

import "time"

// ActionKind identifies a reducer action, abstracted from whatever input
// device or driver produced it.
type ActionKind int

const (
	ActionNone           ActionKind = iota
	ActionMoveLeft                  // shift the current piece one cell left
	ActionMoveRight                 // shift the current piece one cell right
	ActionMoveDown                  // soft drop / gravity step
	ActionRotateCW                  // rotate clockwise with wall kicks
	ActionRotateCCW                 // rotate counterclockwise with wall kicks
	ActionHardDrop                  // drop, stamp, and resolve immediately
	ActionHold                      // stash or swap the current piece
	ActionPause                     // playing -> paused
	ActionResume                    // paused -> playing
	ActionRestart                   // fresh game from any state
	ActionTick                      // accumulate wall-clock time (payload At)
	ActionLock                      // stamp the current piece onto the board
	ActionSpawn                     // bring the next piece into play
	ActionClearLines                // score a caller-supplied clear count (payload Lines)
	ActionStartClearAnim            // begin a line-clear animation (payload Rows)
	ActionEndClearAnim              // end the line-clear animation
	ActionSetLastAction             // overwrite the last-action tag (payload Tag)
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionTick:
		return "Tick"
	case ActionLock:
		return "Lock"
	case ActionSpawn:
		return "Spawn"
	case ActionClearLines:
		return "ClearLines"
	case ActionStartClearAnim:
		return "StartClearAnim"
	case ActionEndClearAnim:
		return "EndClearAnim"
	case ActionSetLastAction:
		return "SetLastAction"
	default:
		return "Unknown"
	}
}

// Action is one tagged reducer input. Only the payload fields relevant to
// the kind are read; the rest stay zero.
type Action struct {
	Kind  ActionKind
	At    time.Time  // ActionTick: current wall-clock time
	Lines int        // ActionClearLines: number of lines to score
	Rows  []int      // ActionStartClearAnim: rows being animated
	Tag   LastAction // ActionSetLastAction: tag to record
}
