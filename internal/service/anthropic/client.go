package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"MarketPing/internal/domain/models"
	"MarketPing/pkg/logger"
)

// Service produces market reports by prompting Claude with web search
// enabled. It implements repository.ReportGenerator.
type Service struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *logger.Logger
}

type Option func(*Service)

func WithModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.model = anthropic.Model(model)
		}
	}
}

func WithMaxTokens(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTokens = int64(n)
		}
	}
}

func NewService(apiKey string, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model("claude-opus-4-5"),
		maxTokens: 2000,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) MarketOpen(ctx context.Context) (*models.Report, error) {
	return s.call(ctx, "open", marketOpenPrompt())
}

func (s *Service) Intraday(ctx context.Context, hour int) (*models.Report, error) {
	return s.call(ctx, "intraday", intradayPrompt(hour))
}

func (s *Service) Closing(ctx context.Context) (*models.Report, error) {
	return s.call(ctx, "closing", closingPrompt())
}

func (s *Service) Adhoc(ctx context.Context, hour int) (*models.Report, error) {
	return s.call(ctx, "adhoc", adhocPrompt(hour))
}

func (s *Service) PreOpen(ctx context.Context) (*models.Report, error) {
	return s.call(ctx, "pre_open", preOpenPrompt())
}

func (s *Service) NextDay(ctx context.Context) (*models.Report, error) {
	return s.call(ctx, "night", nextDayPrompt())
}

func (s *Service) Weekend(ctx context.Context) (*models.Report, error) {
	return s.call(ctx, "weekend", weekendPrompt())
}

func (s *Service) call(ctx context.Context, kind, prompt string) (*models.Report, error) {
	started := time.Now()
	s.log.Info("generating report", logger.String("kind", kind), logger.String("model", string(s.model)))

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Tools: []anthropic.ToolUnionParam{
			{OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{}},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	// The model may emit search blocks before the answer; keep only text.
	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	report, err := parseReport(text.String())
	if err != nil {
		return nil, err
	}

	s.log.Info("report generated",
		logger.String("kind", kind),
		logger.Int("picks", len(report.Stocks)),
		logger.Duration("took", time.Since(started)))
	return report, nil
}

// parseReport extracts the JSON object from a model reply that may be
// wrapped in markdown fences or surrounding prose.
func parseReport(raw string) (*models.Report, error) {
	text := strings.TrimSpace(raw)
	for _, fence := range []string{"```json", "```"} {
		if idx := strings.Index(text, fence); idx >= 0 {
			text = text[idx+len(fence):]
			if end := strings.Index(text, "```"); end >= 0 {
				text = text[:end]
			}
			text = strings.TrimSpace(text)
			break
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	var report models.Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, fmt.Errorf("invalid report JSON: %w", err)
	}
	return &report, nil
}
