package domain

// Game is one selectable schedule entry. Title is the human-readable line
// shown in the picker; MatchKey correlates the game with a match record on
// the streams API by exact title equality.
type Game struct {
	Title    string `json:"title"`
	MatchKey string `json:"matchKey"`
}

// Source identifies one streaming backend for a match. ID and Type are
// opaque tokens used only to build the follow-up stream request.
type Source struct {
	ID   string `json:"id"`
	Type string `json:"source"`
}

// Stream is the terminal output unit: a playable embed link.
type Stream struct {
	EmbedURL string `json:"embedUrl"`
}
