// Package summarizer turns a trend report into blog-post ideas through
// an OpenAI-compatible chat-completions endpoint. The prompt is a thin
// structured dump of the report; anything smarter belongs downstream.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"trend_digest/internal/domain"
)

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		logger:     logger.With("component", "summarizer"),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type ideaPayload struct {
	Ideas []struct {
		Title    string   `json:"title"`
		Angle    string   `json:"angle"`
		Keywords []string `json:"keywords"`
		Priority string   `json:"priority"`
	} `json:"ideas"`
}

// GenerateIdeas asks the model for article proposals grounded in the
// report's rising keywords and sentiment signal.
func (c *Client) GenerateIdeas(ctx context.Context, report *domain.TrendReport) ([]domain.BlogIdea, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(report)},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	ideas, err := parseIdeas(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse ideas: %w", err)
	}

	c.logger.Debug("generated ideas", "count", len(ideas))
	return ideas, nil
}

const systemPrompt = "You are a content strategist for an AI-industry blog. " +
	"Respond with JSON only: {\"ideas\": [{\"title\", \"angle\", \"keywords\", \"priority\"}]} " +
	"where priority is high, medium or low."

func buildPrompt(report *domain.TrendReport) string {
	var sb strings.Builder

	sb.WriteString("Rising keywords this week:\n")
	for _, t := range report.Trends {
		fmt.Fprintf(&sb, "- %s: growth %.1f%%, %d mentions\n", t.Keyword, t.GrowthRate, t.CurrentCount)
	}

	if report.MentionGrowthSet {
		fmt.Fprintf(&sb, "\nOverall mention volume changed %.1f%% week over week.\n", report.MentionGrowthRate)
	}

	if report.SentimentTrend != nil {
		fmt.Fprintf(&sb, "\nCommunity sentiment swing: %s (%.1f%%, %d posts vs %d).\n",
			report.SentimentTrend.Sentiment,
			report.SentimentTrend.GrowthRate,
			report.SentimentTrend.CurrentCount,
			report.SentimentTrend.PreviousCount,
		)
	}

	if len(report.Corroborated) > 0 {
		sb.WriteString("\nVerified across multiple sources:\n")
		for _, c := range report.Corroborated {
			fmt.Fprintf(&sb, "- %s (%d mentions across %s)\n", c.Keyword, c.Count, strings.Join(c.Sources, ", "))
		}
	}

	sb.WriteString("\nPropose 3-7 blog-post ideas as JSON.")
	return sb.String()
}

var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// parseIdeas tolerates a fenced JSON block around the payload; some
// models wrap it regardless of instructions.
func parseIdeas(content string) ([]domain.BlogIdea, error) {
	if m := jsonFence.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	var payload ideaPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}

	ideas := make([]domain.BlogIdea, 0, len(payload.Ideas))
	for _, i := range payload.Ideas {
		if i.Title == "" {
			continue
		}
		priority := i.Priority
		switch priority {
		case "high", "medium", "low":
		default:
			priority = "medium"
		}
		ideas = append(ideas, domain.BlogIdea{
			Title:    i.Title,
			Angle:    i.Angle,
			Keywords: i.Keywords,
			Priority: priority,
		})
	}
	return ideas, nil
}
