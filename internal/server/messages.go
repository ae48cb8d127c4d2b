package server

import "github.com/sortviz/sortviz/pkg/step"

// Client command types.
const (
	commandLoad  = "load"
	commandPlay  = "play"
	commandPause = "pause"
	commandNext  = "next"
	commandPrev  = "prev"
	commandSeek  = "seek"
	commandSpeed = "speed"
	commandReset = "reset"
)

// Server message types.
const (
	messageFrame = "frame"
	messageError = "error"
)

// commandMessage is what a control surface sends over the feed.
type commandMessage struct {
	Type       string `json:"type"`
	Algorithm  string `json:"algorithm,omitempty"`
	Values     []int  `json:"values,omitempty"`
	Index      int    `json:"index,omitempty"`
	IntervalMS int    `json:"intervalMs,omitempty"`
}

// frameMessage is the fully resolved display state pushed on every cursor
// change: everything a renderer needs, with no access to the engine itself.
type frameMessage struct {
	Type        string         `json:"type"`
	Algorithm   string         `json:"algorithm"`
	Mode        string         `json:"mode"`
	Cursor      int            `json:"cursor"`
	StepCount   int            `json:"stepCount"`
	Progress    float64        `json:"progress"`
	Display     []step.Element `json:"displayArray"`
	Highlights  []int          `json:"highlightIndices"`
	Description string         `json:"description"`
	Stats       step.Stats     `json:"stats"`
	Totals      step.Stats     `json:"totals"`
}

// errorMessage reports a rejected command without closing the feed.
type errorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}
