package entity

import "time"

// Target is one subject of a collection run: an apartment complex with its
// administrative region, or a region alone (empty Region).
type Target struct {
	Name   string `mapstructure:"name" json:"name"`
	Region string `mapstructure:"region" json:"region"`
}

// Relevance tier labels derived from the mean verdict score of an entity's
// retained news items.
const (
	RelevanceTierVeryHigh = "very_high"
	RelevanceTierHigh     = "high"
	RelevanceTierMedium   = "medium"
)

// Relevance filter modes recorded in run metadata.
const (
	RelevanceFilterLLM      = "llm-based"
	RelevanceFilterKeyword  = "keyword-based"
	RelevanceFilterDisabled = "disabled"
)

// NewsItem is one retrieved news article after normalization. Title and
// Description carry no markup and no double quotes so the record embeds
// safely in a JSON document. Items are never mutated after creation.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	Source      string `json:"source"`
	Relevance   string `json:"relevance,omitempty"`
}

// EntityResult is the aggregated outcome for one target.
// Items are ordered by relevance score descending, provider order on ties.
type EntityResult struct {
	Region         string     `json:"region,omitempty"`
	TotalNews      int        `json:"total_news"`
	RelevanceScore string     `json:"relevance_score,omitempty"`
	NewsCount      int        `json:"news_count"`
	Summary        string     `json:"summary"`
	Items          []NewsItem `json:"items"`
}

// RunMetadata describes how a collection run was produced.
type RunMetadata struct {
	TotalEntities     int     `json:"total_entities"`
	RelevanceFilter   string  `json:"relevance_filter"`
	MinRelevanceScore float64 `json:"min_relevance_score,omitempty"`
	Description       string  `json:"description,omitempty"`
}

// CollectionRun is the full output document of one batch invocation. It is
// written wholesale to storage; entities that failed this run carry the
// previous run's record forward instead of being dropped.
type CollectionRun struct {
	LastUpdated time.Time                `json:"last_updated"`
	Metadata    RunMetadata              `json:"metadata"`
	Entities    map[string]*EntityResult `json:"entities"`
}
