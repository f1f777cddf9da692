// ABOUTME: OpenAI-backed recipe name recommender
// ABOUTME: One bounded chat-completion attempt; parse failures are recoverable upstream
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/recipedex/internal/core"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for recommendations
	DefaultChatModel = "gpt-3.5-turbo"
	// DefaultTimeout bounds the single completion attempt
	DefaultTimeout = 30 * time.Second

	maxResponseTokens = 200
)

// ClientConfig holds configuration for the OpenAI recommender
type ClientConfig struct {
	APIKey    string
	ChatModel string
	Timeout   time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:    apiKey,
		ChatModel: DefaultChatModel,
		Timeout:   DefaultTimeout,
	}
}

// OpenAIRecommender asks a chat model to pick recipes from the catalog. It
// implements core.NameRecommender and is best-effort by design: every failure
// is returned to the orchestrator, which falls back to rule-based ranking.
type OpenAIRecommender struct {
	client    *openai.Client
	chatModel string
	timeout   time.Duration
}

// NewOpenAIRecommender creates a recommender with the given API key and
// default configuration
func NewOpenAIRecommender(apiKey string) (*OpenAIRecommender, error) {
	return NewOpenAIRecommenderWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIRecommenderWithConfig creates a recommender with custom configuration
func NewOpenAIRecommenderWithConfig(config *ClientConfig) (*OpenAIRecommender, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OpenAIRecommender{
		client:    openai.NewClient(config.APIKey),
		chatModel: chatModel,
		timeout:   timeout,
	}, nil
}

// Recommend asks the model for recipe names from the catalog summary. One
// attempt only: retrying a best-effort oracle just delays the fallback.
func (c *OpenAIRecommender) Recommend(ctx context.Context, summary core.CatalogSummary) ([]string, error) {
	prompt, err := buildPrompt(summary)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   maxResponseTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return ParseRecipeNames(resp.Choices[0].Message.Content)
}

// buildPrompt renders the recommendation prompt from the catalog summary
func buildPrompt(summary core.CatalogSummary) (string, error) {
	prefsJSON, err := json.Marshal(summary.Preferences)
	if err != nil {
		return "", fmt.Errorf("failed to serialize preferences: %w", err)
	}

	favoriteNames := strings.Join(summary.FavoriteNames, ", ")
	if favoriteNames == "" {
		favoriteNames = "None yet"
	}

	return fmt.Sprintf(`You are a recipe recommendation assistant for bachelors living away from home.
Recommend 5 recipes from this list: %s

User preferences: %s
Favorite recipes: %s

Consider:
- Easy recipes for beginners
- Quick cooking times
- Simple ingredients
- Bachelor-friendly meals

Return only a JSON array of recipe names, like: ["Recipe 1", "Recipe 2", ...]`,
		strings.Join(summary.RecipeNames, ", "), string(prefsJSON), favoriteNames), nil
}

// ParseRecipeNames extracts a JSON array of recipe names from model output,
// stripping any code-fence markers the model wrapped around it.
func ParseRecipeNames(content string) ([]string, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err != nil {
		return nil, fmt.Errorf("failed to parse recipe names: %w", err)
	}

	return names, nil
}
