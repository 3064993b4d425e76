package layout

import (
	"fmt"
	"strings"
)

// Mode selects how a tree is turned into lines.
type Mode uint8

// Render modes, in the order Next cycles through them.
const (
	// ModeDefault lays out the document for reading.
	ModeDefault Mode = iota

	// ModeTreeData shows the tree outline with each node's payload.
	ModeTreeData

	// ModeTreeRaw shows the tree outline with indices and kinds only.
	ModeTreeRaw

	// ModeNodeRaw dumps every node payload in index order.
	ModeNodeRaw

	modeCount
)

var modeNames = [...]string{
	ModeDefault:  "default",
	ModeTreeData: "tree-data",
	ModeTreeRaw:  "tree-raw",
	ModeNodeRaw:  "node-raw",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// IsValid returns true if m is a known mode.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// Next returns the mode after m, wrapping around to ModeDefault.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return Mode(i), nil
		}
	}
	return ModeDefault, fmt.Errorf("unknown render mode %q (want one of %s)", name, strings.Join(ModeNames(), ", "))
}

// ModeNames returns the names of all modes.
func ModeNames() []string {
	return append([]string(nil), modeNames[:]...)
}
