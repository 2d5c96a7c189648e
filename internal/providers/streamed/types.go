package streamed

type matchResponse struct {
	Title   string           `json:"title"`
	Sources []sourceResponse `json:"sources"`
}

type sourceResponse struct {
	ID     string `json:"id"`
	Source string `json:"source"`
}

type streamResponse struct {
	EmbedURL string `json:"embedUrl"`
}
