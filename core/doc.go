// Package core contains the business logic for the Freelance Radar API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Source, Entry, FeedItem, Analysis)
// - sources: The ordered, immutable feed registry
// - lexicon: Versioned French word lists and location matching
// - feed: Fetching, parsing and item assembly for one source
// - content: Markup sanitizing and preview truncation
// - classify: Help-seeking question detection
// - scoring: Relevance scoring
// - ranking: Concurrent fan-out, filtering and top-N ranking
// - analysis: Language model analysis of ranked items
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, clock)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - A failing source never fails a search
//
// # Usage Example
//
//	import (
//	    "freelance-radar-api/core/feed"
//	    "freelance-radar-api/core/interfaces"
//	    "freelance-radar-api/core/ranking"
//	    "freelance-radar-api/core/sources"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	registry := sources.MustDefault()
//	collector := feed.NewFeedService(deps, feed.Config{})
//	ranker := ranking.NewService(deps, registry, collector, ranking.Config{})
//
//	items := ranker.Rank(ctx, "développeur web", "Paris")
package core
