// Package service orchestrates one analysis run: resolve the symbol, fetch
// prices and news, and combine the scorers into a verdict.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
	"sentimentai/internal/verdict"
)

// SymbolResolver maps a free-text query to a tradable symbol.
type SymbolResolver interface {
	Resolve(ctx context.Context, query string) string
}

// PriceSource produces a price snapshot for a symbol.
type PriceSource interface {
	Snapshot(ctx context.Context, symbol, fallbackName string) *domain.PriceSnapshot
}

// NewsSource gathers scored headlines for a query.
type NewsSource interface {
	Gather(ctx context.Context, query string) *domain.SentimentSummary
}

// VerdictEngine turns a snapshot and its headlines into a verdict.
type VerdictEngine interface {
	Combine(in verdict.Input) domain.VerdictResult
}

// ResultCache is the slice of the redis client the service uses. Finished
// analyses are immutable, so memoizing them is safe; the cache sits outside
// the pipeline and its failures are absorbed.
type ResultCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type AnalysisService struct {
	resolver SymbolResolver
	prices   PriceSource
	news     NewsSource
	engine   VerdictEngine
	cache    ResultCache
	cacheTTL time.Duration
	tracer   trace.Tracer
}

// NewAnalysisService wires the pipeline. cache may be nil, in which case
// every query runs the full pipeline.
func NewAnalysisService(
	resolver SymbolResolver,
	prices PriceSource,
	news NewsSource,
	engine VerdictEngine,
	cache ResultCache,
	cacheTTL time.Duration,
	tracer trace.Tracer,
) *AnalysisService {
	return &AnalysisService{
		resolver: resolver,
		prices:   prices,
		news:     news,
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		tracer:   tracer,
	}
}

var ErrEmptyQuery = errors.New("empty query")

// Analyze runs the full pipeline for query, serving a memoized result when
// the same query was analyzed recently.
func (s *AnalysisService) Analyze(ctx context.Context, query string) (*domain.Analysis, error) {
	ctx, span := s.tracer.Start(ctx, "service.analyze")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	cacheKey := "analysis:" + strings.ToLower(query)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	symbol := s.resolver.Resolve(ctx, query)
	snapshot := s.prices.Snapshot(ctx, symbol, query)
	summary := s.news.Gather(ctx, snapshot.Name)
	result := s.engine.Combine(verdict.Input{
		Snapshot: snapshot,
		Articles: summary.AnalyzedData,
	})

	analysis := &domain.Analysis{
		Query:     query,
		Symbol:    symbol,
		Snapshot:  snapshot,
		Summary:   summary,
		Verdict:   result,
		FetchedAt: time.Now().UTC(),
	}
	s.toCache(ctx, cacheKey, analysis)
	return analysis, nil
}

func (s *AnalysisService) fromCache(ctx context.Context, key string) *domain.Analysis {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("service: cache read for %s failed: %v", key, err)
		}
		return nil
	}
	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("service: stale cache entry for %s dropped: %v", key, err)
		return nil
	}
	return &analysis
}

func (s *AnalysisService) toCache(ctx context.Context, key string, analysis *domain.Analysis) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(analysis)
	if err != nil {
		log.Printf("service: cache encode for %s failed: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		log.Printf("service: cache write for %s failed: %v", key, err)
	}
}
