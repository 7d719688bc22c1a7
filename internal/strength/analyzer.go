// Package strength scores the persuasive quality of generated arguments.
// Scores never feed back into generation; they are a downstream inspection
// tool for assembled pairs.
package strength

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/mpeirce/logipair/internal/rules"
)

// Report is the per-argument strength breakdown. All component scores are
// in [0,1]; Overall is their weighted combination.
type Report struct {
	LogicalValidity      float64  `json:"logical_validity"`
	SemanticPlausibility float64  `json:"semantic_plausibility"`
	LinguisticClarity    float64  `json:"linguistic_clarity"`
	Persuasiveness       float64  `json:"persuasiveness"`
	Sophistication       float64  `json:"sophistication"`
	EmotionalImpact      float64  `json:"emotional_impact"`
	Techniques           []string `json:"techniques_used,omitempty"`
	Strengths            []string `json:"strengths,omitempty"`
	Weaknesses           []string `json:"weaknesses,omitempty"`
	Overall              float64  `json:"overall_score"`
}

// Analyzer scores one argument.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, arg model.Argument) (Report, error)
}

// New builds the analyzer selected by the configuration.
func New(cfg model.StrengthConfig) (Analyzer, error) {
	switch cfg.Provider {
	case "", "heuristic":
		return NewHeuristic(cfg.CacheTTL), nil
	case "openai":
		return NewJudge(cfg)
	default:
		return nil, fmt.Errorf("unknown strength provider %q", cfg.Provider)
	}
}

// Overall-score weights.
var weights = struct {
	validity, plausibility, clarity, persuasion, sophistication, emotion float64
}{0.25, 0.20, 0.15, 0.20, 0.10, 0.10}

// Heuristic is the lexicon-based analyzer. It needs no network and is fully
// deterministic; repeated texts are served from an in-memory cache.
type Heuristic struct {
	memo *cache.Cache
}

// NewHeuristic creates the lexicon analyzer. A zero TTL keeps entries for
// the process lifetime.
func NewHeuristic(ttl time.Duration) *Heuristic {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Heuristic{memo: cache.New(ttl, 10*time.Minute)}
}

func (h *Heuristic) Name() string { return "heuristic" }

// Analyze scores one argument from its surface text and rule labels.
func (h *Heuristic) Analyze(_ context.Context, arg model.Argument) (Report, error) {
	key := arg.RuleType + "|" + arg.Text
	if hit, ok := h.memo.Get(key); ok {
		return hit.(Report), nil
	}

	text := strings.ToLower(arg.Text)

	validity := 0.0
	plausibility := 0.4
	if arg.IsValid {
		validity = 1.0
		plausibility = 0.7
	}

	clarity := analyzeClarity(text)
	emotion := measureEmotion(arg.Text)
	techniques := detectTechniques(text)
	persuasion := calcPersuasiveness(arg, techniques)
	sophistication := assessSophistication(text, arg)
	_, overconfident := certaintyLevel(text)

	r := Report{
		LogicalValidity:      validity,
		SemanticPlausibility: plausibility,
		LinguisticClarity:    clarity,
		Persuasiveness:       persuasion,
		Sophistication:       sophistication,
		EmotionalImpact:      emotion,
		Techniques:           techniques,
	}
	r.annotate(arg, overconfident)
	r.Overall = weights.validity*validity +
		weights.plausibility*plausibility +
		weights.clarity*clarity +
		weights.persuasion*persuasion +
		weights.sophistication*sophistication +
		weights.emotion*emotion

	h.memo.Set(key, r, cache.DefaultExpiration)
	return r, nil
}

// annotate fills the human-readable strength and weakness notes.
func (r *Report) annotate(arg model.Argument, overconfident bool) {
	if arg.IsValid {
		r.Strengths = append(r.Strengths, "Logically valid inference")
	} else {
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Commits %s fallacy", arg.RuleType))
	}
	if r.LinguisticClarity > 0.7 {
		r.Strengths = append(r.Strengths, "Clear and well-structured")
	} else if r.LinguisticClarity < 0.4 {
		r.Weaknesses = append(r.Weaknesses, "Unclear or confusing structure")
	}
	if r.SemanticPlausibility > 0.7 {
		r.Strengths = append(r.Strengths, "Highly plausible in real world")
	} else if r.SemanticPlausibility < 0.3 {
		r.Weaknesses = append(r.Weaknesses, "Implausible or unrealistic")
	}
	if r.Persuasiveness > 0.7 {
		if arg.IsValid {
			r.Strengths = append(r.Strengths, "Both valid and persuasive")
		} else {
			r.Weaknesses = append(r.Weaknesses, "Persuasive but logically flawed")
		}
	}
	if overconfident {
		r.Weaknesses = append(r.Weaknesses, "Uses overconfident language")
	}
	if r.Sophistication > 0.7 {
		if arg.IsValid {
			r.Strengths = append(r.Strengths, "Sophisticated reasoning")
		} else {
			r.Weaknesses = append(r.Weaknesses, "Subtle fallacy, hard to detect")
		}
	}
}

var clarityIndicators = map[string]float64{
	"therefore": 0.9, "thus": 0.9, "hence": 0.85, "consequently": 0.9,
	"because": 0.85, "since": 0.8,
	"somehow": 0.3, "maybe": 0.4, "sort of": 0.3, "kind of": 0.3,
}

var hedgeWords = map[string]bool{
	"maybe": true, "perhaps": true, "possibly": true, "might": true,
	"could": true, "seems": true, "appears": true, "apparently": true,
	"arguably": true, "presumably": true, "supposedly": true, "allegedly": true,
}

var certaintyMarkers = map[string]float64{
	"definitely": 0.9, "certainly": 0.9, "absolutely": 0.95, "undoubtedly": 0.95,
	"clearly": 0.85, "obviously": 0.85, "must": 0.8,
	"always": 0.9, "never": 0.9, "every": 0.85, "all": 0.85, "none": 0.85,
}

var emotionalWords = map[string]float64{
	"danger": 0.8, "threat": 0.8, "risk": 0.7, "harm": 0.7, "disaster": 0.9,
	"wonderful": 0.7, "amazing": 0.7, "excellent": 0.6, "perfect": 0.8,
	"terrible": 0.7, "horrible": 0.8, "awful": 0.7, "disgusting": 0.8,
}

var techniquePatterns = map[string][]string{
	"appeal_to_authority":    {"experts say", "scientists agree", "studies show", "research proves"},
	"emotional_appeal":       {"feel", "fear", "love", "hate", "angry", "worried"},
	"appeal_to_common_sense": {"everyone knows", "common sense", "obvious", "clearly", "self-evident"},
	"fear_appeal":            {"danger", "risk", "threat", "harm", "disaster", "crisis"},
	"appeal_to_popularity":   {"everyone", "most people", "majority", "widely accepted"},
}

var fallacyPersuasiveness = map[string]float64{
	rules.AffirmingTheConsequent:    0.7,
	rules.DenyingTheAntecedent:      0.6,
	rules.AffirmingADisjunct:        0.5,
	rules.FalseConjunction:          0.4,
	rules.CompositionFallacy:        0.6,
	rules.FalseDilemma:              0.8,
	rules.NonSequitur:               0.3,
	rules.InvalidDisjunctionElim:    0.5,
	rules.InvalidDestructiveDilemma: 0.3,
}

func analyzeClarity(text string) float64 {
	score := 0.5
	for word, s := range clarityIndicators {
		if strings.Contains(text, word) && s > score {
			score = s
		}
	}
	words := strings.Fields(text)
	for _, w := range words {
		if hedgeWords[strings.Trim(w, ".,")] {
			score -= 0.1
		}
	}
	if strings.Contains(text, "if") && strings.Contains(text, "then") {
		score += 0.1
	}
	if strings.Contains(text, "because") || strings.Contains(text, "since") {
		score += 0.1
	}
	if len(words) > 30 {
		score -= 0.1
	} else if len(words) < 10 {
		score += 0.1
	}
	return clamp(score)
}

func certaintyLevel(text string) (float64, bool) {
	score := 0.5
	count := 0
	for marker, s := range certaintyMarkers {
		if strings.Contains(text, marker) {
			count++
			if s > score {
				score = s
			}
		}
	}
	return score, count >= 2 || score > 0.9
}

func measureEmotion(original string) float64 {
	text := strings.ToLower(original)
	impact := 0.0
	for word, s := range emotionalWords {
		if strings.Contains(text, word) && s > impact {
			impact = s
		}
	}
	if strings.Contains(original, "!") {
		impact += 0.2
	}
	for _, w := range strings.Fields(original) {
		if len(w) > 1 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			impact += 0.1
		}
	}
	if impact > 1 {
		impact = 1
	}
	return impact
}

func detectTechniques(text string) []string {
	var out []string
	for technique, patterns := range techniquePatterns {
		for _, p := range patterns {
			if strings.Contains(text, p) {
				out = append(out, technique)
				break
			}
		}
	}
	return out
}

func calcPersuasiveness(arg model.Argument, techniques []string) float64 {
	score := 0.6
	if !arg.IsValid {
		score = 0.4
		if s, ok := fallacyPersuasiveness[arg.RuleType]; ok {
			score = s
		}
	}
	for _, t := range techniques {
		switch t {
		case "appeal_to_authority":
			score += 0.15
		case "appeal_to_common_sense":
			score += 0.1
		case "fear_appeal":
			score += 0.2
		case "appeal_to_popularity":
			score += 0.1
		}
	}
	if len(techniques) > 3 {
		score -= 0.1
	}
	if score > 1 {
		score = 1
	}
	return score
}

var subtleFallacies = map[string]float64{
	rules.AffirmingTheConsequent: 0.7,
	rules.FalseDilemma:           0.6,
	rules.CompositionFallacy:     0.8,
}

var obviousFallacies = map[string]float64{
	rules.NonSequitur:      0.2,
	rules.FalseConjunction: 0.3,
}

func assessSophistication(text string, arg model.Argument) float64 {
	score := 0.5
	if !arg.IsValid {
		if s, ok := subtleFallacies[arg.RuleType]; ok {
			score = s
		} else if s, ok := obviousFallacies[arg.RuleType]; ok {
			score = s
		}
	}
	if strings.Contains(text, "obvious") || strings.Contains(text, "clearly") {
		score -= 0.1
	}
	for _, term := range []string{"therefore", "hence", "consequently", "implies"} {
		if strings.Contains(text, term) {
			score += 0.05
		}
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Comparison summarizes how two scored arguments differ.
type Comparison struct {
	Stronger        int      `json:"stronger_overall"` // 1 or 2
	ScoreDifference float64  `json:"score_difference"`
	KeyDifferences  []string `json:"key_differences,omitempty"`
}

// Compare contrasts two reports, flagging component gaps above 0.3.
func Compare(a, b Report) Comparison {
	c := Comparison{Stronger: 1, ScoreDifference: a.Overall - b.Overall}
	if b.Overall > a.Overall {
		c.Stronger = 2
		c.ScoreDifference = -c.ScoreDifference
	}

	metrics := []struct {
		name string
		x, y float64
	}{
		{"logical_validity", a.LogicalValidity, b.LogicalValidity},
		{"semantic_plausibility", a.SemanticPlausibility, b.SemanticPlausibility},
		{"linguistic_clarity", a.LinguisticClarity, b.LinguisticClarity},
		{"persuasiveness", a.Persuasiveness, b.Persuasiveness},
		{"sophistication", a.Sophistication, b.Sophistication},
	}
	for _, m := range metrics {
		diff := m.x - m.y
		if diff > 0.3 {
			c.KeyDifferences = append(c.KeyDifferences,
				fmt.Sprintf("Argument 1 has higher %s (%.2f vs %.2f)", m.name, m.x, m.y))
		} else if diff < -0.3 {
			c.KeyDifferences = append(c.KeyDifferences,
				fmt.Sprintf("Argument 2 has higher %s (%.2f vs %.2f)", m.name, m.y, m.x))
		}
	}
	return c
}
