package dto

// NaverNewsItem is one raw item from the Naver news search API. Title and
// Description may contain markup and HTML entities.
type NaverNewsItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}

// NaverSearchResponse is the raw response of the Naver news search API.
type NaverSearchResponse struct {
	Total   int             `json:"total"`
	Start   int             `json:"start"`
	Display int             `json:"display"`
	Items   []NaverNewsItem `json:"items"`
}

// SearchResult is the provider-agnostic result of one news search call.
// Items keep the provider's native order, which later ranking uses as the
// tie-break key.
type SearchResult struct {
	Items []NaverNewsItem
	Total int
}
