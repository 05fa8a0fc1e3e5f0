package telegram

import (
	"fmt"
	"sort"
	"strings"

	"golang-apt-news-collector/internal/entity"
)

// FormatCollectionRun renders a short Markdown digest of one collection run
// for the notification chat.
func FormatCollectionRun(kind string, run *entity.CollectionRun) string {
	var b strings.Builder

	totalNews := 0
	for _, result := range run.Entities {
		totalNews += result.NewsCount
	}

	b.WriteString(fmt.Sprintf("*%s 수집 완료* (%s)\n", kind, run.LastUpdated.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("대상 %d곳, 뉴스 %d건\n\n", len(run.Entities), totalNews))

	names := make([]string, 0, len(run.Entities))
	for name := range run.Entities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result := run.Entities[name]
		line := fmt.Sprintf("• *%s*: %d건", name, result.NewsCount)
		if result.RelevanceScore != "" {
			line += fmt.Sprintf(" (%s)", result.RelevanceScore)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
