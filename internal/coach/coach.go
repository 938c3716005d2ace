// Package coach is the boundary to the generative model: it builds
// prompts, invokes the LLM client and shapes the raw text responses. The
// plan pipeline downstream never sees anything but text.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/llm"
)

// PlanRequest carries the user inputs for plan generation.
type PlanRequest struct {
	Tasks      []string
	Hours      float64
	Difficulty string
	Style      string
	Deadline   *domain.Deadline
}

// Coach generates study-plan text, quotes and habit-log narratives. Plan
// generation surfaces model failures to the caller so a failed call never
// replaces an existing plan; the narrative helpers degrade to
// deterministic fallbacks instead.
type Coach struct {
	client llm.Client
}

// New creates a Coach backed by the given LLM client. A nil client
// disables generation: PlanText errors and the narrative helpers use
// their fallbacks.
func New(client llm.Client) *Coach {
	return &Coach{client: client}
}

// PlanText asks the model for a free-form study plan following the
// textual convention the parser expects.
func (c *Coach) PlanText(ctx context.Context, req PlanRequest) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%w: llm is disabled", llm.ErrUnavailable)
	}
	// Pre-flight: plan generation is the longest call, so fail fast when
	// the server is not even reachable.
	if !c.client.Available(ctx) {
		return "", fmt.Errorf("%w: model server is not reachable", llm.ErrUnavailable)
	}
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(req),
	})
	if err != nil {
		return "", fmt.Errorf("generating study plan: %w", err)
	}
	return resp.Text, nil
}

// Quote returns one short motivational quote, falling back to a built-in
// rotation when the model is unavailable.
func (c *Coach) Quote(ctx context.Context) string {
	if c.client == nil {
		return fallbackQuote()
	}
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskQuote,
		UserPrompt: quotePrompt,
	})
	if err != nil {
		return fallbackQuote()
	}
	quote := strings.TrimSpace(strings.Trim(strings.TrimSpace(resp.Text), `"`))
	if quote == "" {
		return fallbackQuote()
	}
	return quote
}

// Insights returns three short bullet insights over the habit log,
// deterministic when the model is unavailable.
func (c *Coach) Insights(ctx context.Context, entries []domain.HabitEntry) string {
	if c.client == nil {
		return fallbackInsights(entries)
	}
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInsights,
		SystemPrompt: insightsSystemPrompt,
		UserPrompt:   "Here are the logs:\n\n" + logsJSON(entries),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return fallbackInsights(entries)
	}
	return strings.TrimSpace(resp.Text)
}

// WeeklyReview returns a weekly performance summary over the habit log,
// deterministic when the model is unavailable.
func (c *Coach) WeeklyReview(ctx context.Context, entries []domain.HabitEntry) string {
	if c.client == nil {
		return fallbackReview(entries)
	}
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: reviewSystemPrompt,
		UserPrompt:   "Habit logs for the week:\n\n" + logsJSON(entries),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return fallbackReview(entries)
	}
	return strings.TrimSpace(resp.Text)
}

func buildPlanPrompt(req PlanRequest) string {
	deadline := ""
	if req.Deadline != nil && req.Deadline.Date != "" {
		deadline = fmt.Sprintf("\n- Upcoming deadline: %s on %s", req.Deadline.Name, req.Deadline.Date)
	}
	return fmt.Sprintf(planUserPromptTemplate,
		strings.Join(req.Tasks, ", "),
		req.Hours,
		req.Difficulty,
		req.Style,
		deadline,
	)
}

func logsJSON(entries []domain.HabitEntry) string {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
