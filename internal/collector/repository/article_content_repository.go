package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-apt-news-collector/pkg/logger"
	"golang-apt-news-collector/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
)

// articleContentRepository fetches a linked article and extracts its readable
// text, giving the model judge more context than the search snippet alone.
type articleContentRepository struct {
	client *http.Client
	logger *logger.Logger
}

// NewArticleContentRepository creates a new instance of articleContentRepository.
func NewArticleContentRepository(timeout time.Duration, log *logger.Logger) ArticleContentRepository {
	return &articleContentRepository{
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// FetchReadableText downloads the article and strips it to plain text.
func (r *articleContentRepository) FetchReadableText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for article: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	content := strings.TrimSpace(docHTML.Text())
	content = strings.Join(strings.Fields(content), " ")

	// keep prompts bounded
	return utils.TruncateRunes(content, 2000), nil
}
