package client

import "encoding/json"

// Every message on the wire is a typed envelope, both directions
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	// server -> client
	EventHandshake = "handshake"
	EventFrame     = "frame"
	EventGameOver  = "game_over"

	// client -> server
	EventRegister = "register"
	EventMove     = "move"
)

// Register announces the robot player to the server
type Register struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// Handshake assigns the player its color and the world dimensions
type Handshake struct {
	Color  int `json:"color"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Frame carries one full redraw of the world: the symbol rows top to
// bottom plus a parallel grid of cell owner colors
type Frame struct {
	Turn   int      `json:"turn"`
	Rows   []string `json:"rows"`
	Colors [][]int  `json:"colors"`
}

// Move answers a frame. An empty direction means "no change".
type Move struct {
	Turn      int    `json:"turn"`
	Direction string `json:"direction"`
}

// GameOver ends the session
type GameOver struct {
	Winner int   `json:"winner"`
	Scores []int `json:"scores,omitempty"`
}
