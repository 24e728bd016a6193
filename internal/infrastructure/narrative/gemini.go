package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/api/option"

	"stoploss_quoting/internal/domain/entities"
	"stoploss_quoting/internal/domain/errs"
)

const systemPrompt = `You are a senior stop-loss insurance underwriting analyst. Generate concise, professional risk narratives for underwriting reviews. Respond in JSON format with keys: "summary" (2-3 sentence overview), "keyDrivers" (array of 3-5 short bullet strings), "recommendation" (1-2 sentence action recommendation).`

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator asks a Gemini model for the narrative. Every failure is
// reported as errs.ErrExternalService so callers can fall back.
type GeminiGenerator struct {
	client  *genai.Client
	model   contentGenerator
	printer *message.Printer
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	g := newGeminiGenerator(model)
	g.client = client
	return g, nil
}

func newGeminiGenerator(model contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{model: model, printer: message.NewPrinter(language.English)}
}

func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

type geminiNarrative struct {
	Summary        string   `json:"summary"`
	KeyDrivers     []string `json:"keyDrivers"`
	Recommendation string   `json:"recommendation"`
}

func (g *GeminiGenerator) Generate(ctx context.Context, req entities.NarrativeRequest) (entities.Narrative, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(g.prompt(req)))
	if err != nil {
		return entities.Narrative{}, fmt.Errorf("failed to generate content: %v: %w", err, errs.ErrExternalService)
	}

	text, err := firstText(resp)
	if err != nil {
		return entities.Narrative{}, fmt.Errorf("%v: %w", err, errs.ErrExternalService)
	}

	var out geminiNarrative
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		log.Debug().Str("component", "narrative.gemini").Str("raw", text).Msg("unparseable AI response")
		return entities.Narrative{}, fmt.Errorf("failed to unmarshal AI response: %v: %w", err, errs.ErrExternalService)
	}
	if strings.TrimSpace(out.Summary) == "" || strings.TrimSpace(out.Recommendation) == "" {
		return entities.Narrative{}, fmt.Errorf("incomplete AI narrative: %w", errs.ErrExternalService)
	}
	if out.KeyDrivers == nil {
		out.KeyDrivers = []string{}
	}

	return entities.Narrative{
		Summary:        out.Summary,
		KeyDrivers:     out.KeyDrivers,
		Recommendation: out.Recommendation,
		GeneratedBy:    entities.NarrativeSourceAI,
	}, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content returned from AI")
	}
	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("response part is not text, received %T", resp.Candidates[0].Content.Parts[0])
	}

	aiResponse := strings.TrimSpace(string(textPart))
	if strings.HasPrefix(aiResponse, "```json") {
		aiResponse = strings.TrimPrefix(aiResponse, "```json")
		aiResponse = strings.TrimSuffix(aiResponse, "```")
	}
	return strings.TrimSpace(aiResponse), nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func (g *GeminiGenerator) prompt(req entities.NarrativeRequest) string {
	var b strings.Builder
	b.WriteString("Analyze this stop-loss underwriting review:\n\n")
	fmt.Fprintf(&b, "Group: %s\n", orNA(req.GroupName))
	fmt.Fprintf(&b, "Quote: %s\n", orNA(req.QuoteNumber))
	fmt.Fprintf(&b, "Coverage Type: %s\n", orNA(string(req.CoverageType)))
	fmt.Fprintf(&b, "Risk Score: %.1f%%\n", req.RiskScore*100)
	fmt.Fprintf(&b, "Risk Tier: %s\n", req.RiskTier)
	fmt.Fprintf(&b, "Decision: %s\n", req.Decision)
	fmt.Fprintf(&b, "Expected Loss Ratio: %.1f%%\n", req.ExpectedLossRatio*100)
	fmt.Fprintf(&b, "Large Claimant Count: %d\n", req.LargeClaimantCount)
	b.WriteString(g.printer.Sprintf("Recommended Attachment Point: $%.0f\n", req.RecommendedAttachmentPoint))
	fmt.Fprintf(&b, "Premium Adjustment Factor: %.1f%%\n\n", req.PremiumAdjustmentFactor*100)

	b.WriteString("Risk Factor Breakdown:\n")
	for _, f := range req.RiskFactors.Named() {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", f.Key, f.Score*100)
	}
	b.WriteString("\nGenerate a professional underwriting narrative.")
	return b.String()
}
