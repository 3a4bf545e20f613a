package factory

import (
	"fmt"

	"agroshop-bot-be/pkg/advisor"
	"agroshop-bot-be/pkg/advisor/ollama"
	"agroshop-bot-be/pkg/advisor/openai"
)

func NewProvider(providerType, modelName, apiKey, baseURL string) (advisor.Provider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, modelName, baseURL), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s", providerType)
	}
}
