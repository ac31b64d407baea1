package model

const (
	PointerDown = "down"
	PointerMove = "move"
	PointerUp   = "up"
)

type PointerRequestBody struct {
	Type string `json:"type"`
	Roll int    `json:"roll"`
	PointerEvent
}

type PointerResponse struct {
	State     string     `json:"state"`
	Focused   int        `json:"focused"`
	Selection *Selection `json:"selection"`
	Completed bool       `json:"completed"`
	Count     int        `json:"count"`
	SVG       string     `json:"svg,omitempty"`
}

type RollSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Notes   int    `json:"notes"`
	Focused bool   `json:"focused"`
	Height  int    `json:"height"`
}

type RollsResponse struct {
	Focused int           `json:"focused"`
	Rolls   []RollSummary `json:"rolls"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
