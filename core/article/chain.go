// ABOUTME: Ordered fallback chain over fetch strategies
// ABOUTME: Runs strategies sequentially and short-circuits on the first qualifying body

package article

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"rotter-news-api/core/domain"
	coreerrors "rotter-news-api/core/errors"
	"rotter-news-api/core/interfaces"
)

// ChainConfig is captured by NewChain and never mutated.
type ChainConfig struct {
	// MinBodyLength is the minimum trimmed rune count for a body to qualify.
	MinBodyLength int

	Logger interfaces.Logger

	// Metrics receives chain runs only; Diagnose is not recorded.
	Metrics interfaces.Metrics
}

// Chain tries strategies strictly in order. It holds no per-request state.
type Chain struct {
	strategies []Strategy
	minBody    int
	logger     interfaces.Logger
	metrics    interfaces.Metrics
}

// NewChain creates a chain over a copy of strategies.
func NewChain(strategies []Strategy, cfg ChainConfig) *Chain {
	if cfg.MinBodyLength < 1 {
		cfg.MinBodyLength = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &Chain{
		strategies: append([]Strategy(nil), strategies...),
		minBody:    cfg.MinBodyLength,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Strategies returns the configured strategy names in order.
func (c *Chain) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// Run returns the first qualifying result, or an empty body when every
// strategy fails. Strategy failures are logged and otherwise discarded.
func (c *Chain) Run(ctx context.Context, url string) domain.ExtractionResult {
	for _, s := range c.strategies {
		if ctx.Err() != nil {
			c.logger.Debug("Extraction abandoned", map[string]interface{}{
				"url":   url,
				"error": ctx.Err().Error(),
			})
			break
		}

		started := time.Now()
		a := c.attempt(ctx, s, url)
		elapsed := time.Since(started)
		if c.qualifies(a) {
			c.metrics.ObserveStrategy(s.Name(), interfaces.OutcomeQualified, elapsed)
			c.metrics.ObserveExtraction(interfaces.OutcomeFound)
			c.logger.Info("Article extracted", map[string]interface{}{
				"url":        url,
				"strategy":   s.Name(),
				"length":     utf8.RuneCountInString(a.Body),
				"elapsed_ms": elapsed.Milliseconds(),
			})
			return domain.ExtractionResult{Body: strings.TrimSpace(a.Body), StrategyUsed: s.Name()}
		}

		c.metrics.ObserveStrategy(s.Name(), interfaces.OutcomeFailed, elapsed)
		c.logger.Debug("Strategy produced nothing", map[string]interface{}{
			"url":        url,
			"strategy":   s.Name(),
			"status":     a.Status,
			"error":      c.failure(s, a).Error(),
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}

	c.metrics.ObserveExtraction(interfaces.OutcomeEmpty)
	c.logger.Warn("All strategies failed", map[string]interface{}{
		"url":        url,
		"strategies": c.Strategies(),
	})
	return domain.ExtractionResult{AllStrategiesFailed: true}
}

// Diagnose runs every strategy, sequentially and without short-circuiting,
// and reports each outcome.
func (c *Chain) Diagnose(ctx context.Context, url string) []domain.StrategyReport {
	reports := make([]domain.StrategyReport, 0, len(c.strategies))
	for _, s := range c.strategies {
		started := time.Now()
		a := c.attempt(ctx, s, url)

		report := domain.StrategyReport{
			Name:       s.Name(),
			Status:     a.Status,
			RawLength:  a.RawLength,
			BodyLength: utf8.RuneCountInString(a.Body),
			Preview:    a.Preview,
			ElapsedMS:  time.Since(started).Milliseconds(),
			Qualified:  c.qualifies(a),
		}
		if !report.Qualified {
			report.Error = c.failure(s, a).Error()
		}
		reports = append(reports, report)
	}
	return reports
}

// attempt isolates the chain from a misbehaving strategy.
func (c *Chain) attempt(ctx context.Context, s Strategy, url string) (a Attempt) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Strategy panicked", map[string]interface{}{
				"url":      url,
				"strategy": s.Name(),
				"panic":    fmt.Sprint(r),
			})
			a = Attempt{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return s.Attempt(ctx, url)
}

func (c *Chain) qualifies(a Attempt) bool {
	return a.Err == nil && utf8.RuneCountInString(strings.TrimSpace(a.Body)) >= c.minBody
}

func (c *Chain) failure(s Strategy, a Attempt) error {
	if a.Err != nil {
		return &coreerrors.StrategyError{Strategy: s.Name(), Reason: "attempt failed", Err: a.Err}
	}
	return &coreerrors.StrategyError{Strategy: s.Name(), Reason: "body too short"}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveStrategy(string, string, time.Duration) {}
func (nopMetrics) ObserveExtraction(string)                      {}
