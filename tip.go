package cmdlib

import "context"

// Tip represents a usage tip shown on the frontend landing page.
type Tip struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Sections []TipSection `json:"sections"`
}

// TipSection is one block of a tip. Type discriminates how the frontend
// renders the block; Data1/Data2/Extra carry type-specific payloads.
type TipSection struct {
	Type  int64  `json:"type"`
	Data1 string `json:"data1"`
	Data2 string `json:"data2"`
	Extra string `json:"extra"`
}

// TipService represents a service for reading tips.
type TipService interface {
	// RandomTip retrieves one uniformly selected tip with its sections
	// ordered by stored position. Returns ENOTFOUND if no tips exist.
	RandomTip(ctx context.Context) (*Tip, error)
}
