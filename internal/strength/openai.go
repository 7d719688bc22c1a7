package strength

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/mpeirce/logipair/internal/model"
)

const judgeSystemPrompt = "You are a strict logic tutor. Score the argument you are given " +
	"and respond with a single JSON object using these float fields in [0,1]: " +
	"logical_validity, semantic_plausibility, linguistic_clarity, persuasiveness, " +
	"sophistication, emotional_impact. No prose, no markdown fences."

// Judge scores arguments with a chat model instead of the lexicon heuristic.
// Responses are cached by text so re-analysis of a dataset is free.
type Judge struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	limiter   *rate.Limiter
	memo      *cache.Cache
}

// NewJudge configures the model-backed analyzer.
func NewJudge(cfg model.StrengthConfig) (*Judge, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("strength provider openai: API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	mdl := cfg.Model
	if mdl == "" {
		mdl = openai.GPT4oMini
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &Judge{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     mdl,
		maxTokens: maxTokens,
		timeout:   timeout,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		memo:      cache.New(ttl, 10*time.Minute),
	}, nil
}

func (j *Judge) Name() string { return "openai" }

// Analyze asks the model for component scores and derives the overall score
// with the same weights the heuristic uses, keeping the two providers
// comparable.
func (j *Judge) Analyze(ctx context.Context, arg model.Argument) (Report, error) {
	key := arg.RuleType + "|" + arg.Text
	if hit, ok := j.memo.Get(key); ok {
		return hit.(Report), nil
	}

	if err := j.limiter.Wait(ctx); err != nil {
		return Report{}, fmt.Errorf("strength rate limit: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: j.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: judgeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: judgePrompt(arg)},
		},
		MaxTokens:   j.maxTokens,
		Temperature: 0.0,
	})
	if err != nil {
		return Report{}, fmt.Errorf("strength API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Report{}, fmt.Errorf("strength API returned no choices")
	}

	r, err := parseJudgeReply(resp.Choices[0].Message.Content)
	if err != nil {
		return Report{}, err
	}
	r.Overall = weights.validity*r.LogicalValidity +
		weights.plausibility*r.SemanticPlausibility +
		weights.clarity*r.LinguisticClarity +
		weights.persuasion*r.Persuasiveness +
		weights.sophistication*r.Sophistication +
		weights.emotion*r.EmotionalImpact

	j.memo.Set(key, r, cache.DefaultExpiration)
	return r, nil
}

func judgePrompt(arg model.Argument) string {
	validity := "presented as valid"
	if !arg.IsValid {
		validity = "presented as fallacious"
	}
	return fmt.Sprintf("Rule: %s (%s).\nArgument:\n%s", arg.RuleType, validity, arg.Text)
}

// parseJudgeReply extracts the score object, tolerating fenced or padded
// replies from less obedient models.
func parseJudgeReply(content string) (Report, error) {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Report{}, fmt.Errorf("strength reply has no JSON object: %q", content)
	}

	var r Report
	if err := json.Unmarshal([]byte(content[start:end+1]), &r); err != nil {
		return Report{}, fmt.Errorf("parse strength reply: %w", err)
	}
	for _, v := range []float64{
		r.LogicalValidity, r.SemanticPlausibility, r.LinguisticClarity,
		r.Persuasiveness, r.Sophistication, r.EmotionalImpact,
	} {
		if v < 0 || v > 1 {
			return Report{}, fmt.Errorf("strength score %v out of range", v)
		}
	}
	return r, nil
}
