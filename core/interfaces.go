// Package core defines the pipeline types and interfaces for headscan.
// Each stage of the pipeline is a small, testable unit.
package core

import "context"

// MinLevel and MaxLevel bound the heading levels the pipeline knows about.
const (
	MinLevel = 1
	MaxLevel = 6
)

// FetchResult holds the decoded page body and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Heading represents a single heading found in the page.
// Text is never empty.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// LevelCounts maps a heading level to the number of headings at that level.
type LevelCounts map[int]int

// Get returns the count for level, or 0 when the level never occurred.
func (c LevelCounts) Get(level int) int {
	return c[level]
}

// Total returns the number of headings across all levels.
func (c LevelCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Fetcher retrieves a page body from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the headings out of raw HTML.
type Extractor interface {
	Extract(html string) ([]Heading, error)
}
