// Package autofix enriches findings with AI generated remediation advice.
package autofix

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/classlint/classlint/issue"
)

const (
	GeminiModel = "gemini-1.5-flash"
	AIPrompt    = `Provide a brief explanation and a solution to fix this exception
  handling issue found in compiled Java bytecode: %q.
  Answer in markdown format and keep the response limited to 200 words.`
	GeminiProvider = "gemini"

	timeout = 30 * time.Second
)

// GenAIClient defines the interface for the GenAI client
type GenAIClient interface {
	Close() error
	GenerativeModel(name string) GenAIGenerativeModel
}

// GenAIGenerativeModel defines the interface for the Generative Model
type GenAIGenerativeModel interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// genAIClientWrapper wraps the genai.Client to implement GenAIClient
type genAIClientWrapper struct {
	client *genai.Client
}

func (w *genAIClientWrapper) Close() error {
	return w.client.Close()
}

func (w *genAIClientWrapper) GenerativeModel(name string) GenAIGenerativeModel {
	return &genAIGenerativeModelWrapper{model: w.client.GenerativeModel(name)}
}

// genAIGenerativeModelWrapper wraps the genai.GenerativeModel to implement GenAIGenerativeModel
type genAIGenerativeModelWrapper struct {
	// model is the underlying generative model
	model *genai.GenerativeModel
}

func (w *genAIGenerativeModelWrapper) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := w.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates found")
	}
	// Return the first candidate
	return fmt.Sprintf("%+v", resp.Candidates[0].Content.Parts[0]), nil
}

// NewGenAIClient builds a Gemini backed client.
func NewGenAIClient(ctx context.Context, aiAPIKey, endpoint string) (GenAIClient, error) {
	clientOptions := []option.ClientOption{option.WithAPIKey(aiAPIKey)}
	if endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(endpoint))
	}

	client, err := genai.NewClient(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}

	return &genAIClientWrapper{client: client}, nil
}

func generateSolutionByGemini(client GenAIClient, issues []*issue.Issue) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	model := client.GenerativeModel(GeminiModel)
	cachedAutofix := make(map[string]string)
	for _, finding := range issues {
		if val, ok := cachedAutofix[finding.What]; ok {
			finding.Autofix = val
			continue
		}

		prompt := fmt.Sprintf(AIPrompt, finding.What)
		resp, err := model.GenerateContent(ctx, prompt)
		if err != nil {
			return fmt.Errorf("gemini generating content: %w", err)
		}

		if resp == "" {
			return errors.New("gemini no candidates found")
		}

		finding.Autofix = resp
		cachedAutofix[finding.What] = finding.Autofix
	}
	return nil
}

// GenerateSolution generates a solution for the given issues using the specified AI provider
func GenerateSolution(aiAPIProvider, aiAPIKey, endpoint string, issues []*issue.Issue) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var client GenAIClient

	switch aiAPIProvider {
	case GeminiProvider:
		var err error
		client, err = NewGenAIClient(ctx, aiAPIKey, endpoint)
		if err != nil {
			return fmt.Errorf("generate solution error: %w", err)
		}
	default:
		return errors.New("ai provider not supported")
	}

	defer client.Close() //nolint:errcheck

	return generateSolutionByGemini(client, issues)
}
