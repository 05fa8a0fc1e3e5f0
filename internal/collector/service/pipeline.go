package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/collector/repository"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
	"golang-apt-news-collector/pkg/textutil"
	"golang-apt-news-collector/pkg/utils"
)

// queryQualifier narrows the search to real-estate news.
const queryQualifier = "아파트"

// topicGroup is one fixed summary topic and the keywords that signal it.
type topicGroup struct {
	label    string
	keywords []string
}

// topicGroups are scanned in priority order; at most three matched labels
// make it into the summary line.
var topicGroups = []topicGroup{
	{"신고가 경신", []string{"신고가", "최고가", "억원"}},
	{"가격 상승", []string{"상승", "급등", "오르"}},
	{"재건축", []string{"재건축", "재개발", "정비"}},
	{"분양/입주", []string{"분양", "청약", "입주"}},
	{"거래 동향", []string{"거래량", "매물"}},
}

// PipelineOptions parameterize one pipeline instantiation.
type PipelineOptions struct {
	NewsPerEntity     int
	MinRelevanceScore float64
	// ScoringEnabled false turns the pipeline into the pass-through variant
	// used for region collection: every fetched item is kept, unranked.
	ScoringEnabled   bool
	FetchFullContent bool
}

// Pipeline collects, normalizes, scores, filters, ranks and summarizes news
// for a single target entity.
type Pipeline struct {
	searchRepo    repository.NewsSearchRepository
	relevanceRepo repository.RelevanceRepository
	contentRepo   repository.ArticleContentRepository
	opts          PipelineOptions
	logger        *logger.Logger
}

// NewPipeline creates a new Pipeline. contentRepo may be nil when full
// article fetching is disabled.
func NewPipeline(
	searchRepo repository.NewsSearchRepository,
	relevanceRepo repository.RelevanceRepository,
	contentRepo repository.ArticleContentRepository,
	opts PipelineOptions,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		searchRepo:    searchRepo,
		relevanceRepo: relevanceRepo,
		contentRepo:   contentRepo,
		opts:          opts,
		logger:        log,
	}
}

// scoredItem pairs a normalized item with the verdict used to filter it.
// order is the provider position, the stable tie-break for equal scores.
type scoredItem struct {
	item  entity.NewsItem
	score float64
	order int
}

// Collect runs the full pipeline for one target. An error return means total
// failure for this entity; the batch runner then carries the previous run's
// record forward.
func (p *Pipeline) Collect(ctx context.Context, target entity.Target) (*entity.EntityResult, error) {
	searchResult := p.searchRepo.Search(ctx, fmt.Sprintf("%s %s", target.Name, queryQualifier), p.opts.NewsPerEntity)

	// one broadened retry, then give up
	if len(searchResult.Items) == 0 && target.Region != "" {
		p.logger.Info("No results, retrying with broadened query",
			logger.StringField("entity", target.Name),
			logger.StringField("region", target.Region),
		)
		searchResult = p.searchRepo.Search(ctx, fmt.Sprintf("%s %s", target.Region, target.Name), p.opts.NewsPerEntity)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	retained := make([]scoredItem, 0, len(searchResult.Items))
	for i, raw := range searchResult.Items {
		candidate := p.normalizeItem(raw)

		if !p.opts.ScoringEnabled {
			retained = append(retained, scoredItem{item: candidate, order: i})
			continue
		}

		verdict, err := p.judge(ctx, target.Name, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to judge relevance for %q: %w", candidate.Title, err)
		}

		score := clampScore(verdict.Score)
		if score < p.opts.MinRelevanceScore {
			p.logger.Debug("Filtered news item",
				logger.Float64Field("score", score),
				logger.StringField("title", candidate.Title),
			)
			continue
		}

		candidate.Relevance = verdict.Reason
		retained = append(retained, scoredItem{item: candidate, score: score, order: i})
	}

	if p.opts.ScoringEnabled {
		sort.SliceStable(retained, func(i, j int) bool {
			return retained[i].score > retained[j].score
		})
	}

	items := make([]entity.NewsItem, 0, len(retained))
	for _, s := range retained {
		items = append(items, s.item)
	}

	result := &entity.EntityResult{
		Region:    target.Region,
		TotalNews: searchResult.Total,
		NewsCount: len(items),
		Summary:   summarize(target.Name, items),
		Items:     items,
	}
	if p.opts.ScoringEnabled {
		result.RelevanceScore = relevanceTier(retained)
	}

	return result, nil
}

// normalizeItem cleans the provider fields and derives source and date.
func (p *Pipeline) normalizeItem(raw dto.NaverNewsItem) entity.NewsItem {
	sourceLink := raw.OriginalLink
	if sourceLink == "" {
		sourceLink = raw.Link
	}

	return entity.NewsItem{
		Title:       textutil.Normalize(raw.Title),
		Link:        raw.Link,
		Description: textutil.Normalize(raw.Description),
		PubDate:     utils.FormatPubDate(raw.PubDate),
		Source:      AttributeSource(sourceLink),
	}
}

// judge scores one candidate, optionally enriching the description with the
// article's readable text.
func (p *Pipeline) judge(ctx context.Context, entityName string, candidate entity.NewsItem) (*dto.RelevanceVerdict, error) {
	description := candidate.Description
	if p.opts.FetchFullContent && p.contentRepo != nil {
		if content, err := p.contentRepo.FetchReadableText(ctx, candidate.Link); err != nil {
			p.logger.Warn("Failed to fetch article content, scoring from snippet",
				logger.ErrorField(err),
				logger.StringField("link", candidate.Link),
			)
		} else if content != "" {
			description = description + " " + content
		}
	}

	return p.relevanceRepo.Judge(ctx, entityName, candidate.Title, description)
}

// relevanceTier buckets the mean verdict score of the retained items. An
// empty set defaults to medium.
func relevanceTier(retained []scoredItem) string {
	if len(retained) == 0 {
		return entity.RelevanceTierMedium
	}

	var sum float64
	for _, s := range retained {
		sum += s.score
	}
	mean := sum / float64(len(retained))

	switch {
	case mean >= 0.85:
		return entity.RelevanceTierVeryHigh
	case mean >= 0.70:
		return entity.RelevanceTierHigh
	default:
		return entity.RelevanceTierMedium
	}
}

// summarize composes a one-line summary naming up to three matched topics.
func summarize(entityName string, items []entity.NewsItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("%s 관련 최신 뉴스가 충분하지 않습니다.", entityName)
	}

	var builder strings.Builder
	for _, item := range items {
		builder.WriteString(item.Title)
		builder.WriteString(" ")
		builder.WriteString(item.Description)
		builder.WriteString(" ")
	}
	allText := builder.String()

	var matched []string
	for _, group := range topicGroups {
		for _, kw := range group.keywords {
			if strings.Contains(allText, kw) {
				matched = append(matched, group.label)
				break
			}
		}
		if len(matched) == 3 {
			break
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("%s 관련 최신 부동산 뉴스입니다.", entityName)
	}
	return fmt.Sprintf("%s: %s 관련 뉴스가 주목받고 있습니다.", entityName, strings.Join(matched, ", "))
}

func clampScore(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
