package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GitHubToken  string `json:"github_token,omitempty"`
	Language     string `json:"language"`
	DefaultRepo  string `json:"default_repo,omitempty"`
	ResultLimit  int    `json:"result_limit"`
	Classifier   string `json:"classifier"` // "heuristic" o "ai"
	PathFile     string `json:"path_file"`

	AIConfig AIConfig `json:"ai_config"`

	// Secretos tal como están en el JSON. Los overrides de entorno viven
	// solo en los campos exportados; al guardar se escribe lo persistido.
	persistedGitHubToken  string
	persistedGeminiAPIKey string
	githubTokenFromEnv    bool
	geminiKeyFromEnv      bool
}

type AIConfig struct {
	ActiveAI AI    `json:"active_ai"`
	Model    Model `json:"model,omitempty"`
}

const (
	defaultLang        = "en"
	defaultResultLimit = 30
	maxResultLimit     = 100

	ClassifierHeuristic = "heuristic"
	ClassifierAI        = "ai"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-chat")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err := createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
		applyEnvOverrides(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	applyEnvOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides pisa los dos secretos con variables de entorno (o un
// .env local). Los valores de entorno nunca se persisten en el JSON.
func applyEnvOverrides(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		config.persistedGitHubToken = config.GitHubToken
		config.githubTokenFromEnv = true
		config.GitHubToken = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.persistedGeminiAPIKey = config.GeminiAPIKey
		config.geminiKeyFromEnv = true
		config.GeminiAPIKey = v
	}
}

// SetGitHubToken fija el token a persistir. Un set explícito pisa cualquier
// override de entorno y queda en el JSON.
func (c *Config) SetGitHubToken(token string) {
	c.GitHubToken = token
	c.persistedGitHubToken = token
	c.githubTokenFromEnv = false
}

// SetGeminiAPIKey fija la API key a persistir, pisando el override de entorno.
func (c *Config) SetGeminiAPIKey(key string) {
	c.GeminiAPIKey = key
	c.persistedGeminiAPIKey = key
	c.geminiKeyFromEnv = false
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:    defaultLang,
		ResultLimit: defaultResultLimit,
		Classifier:  ClassifierHeuristic,
		PathFile:    path,
		AIConfig: AIConfig{
			ActiveAI: AIGemini,
			Model:    DefaultModelForAI(AIGemini),
		},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	// Los secretos que vinieron del entorno no se escriben: al disco va lo
	// que ya estaba persistido
	toSave := *config
	if config.githubTokenFromEnv {
		toSave.GitHubToken = config.persistedGitHubToken
	}
	if config.geminiKeyFromEnv {
		toSave.GeminiAPIKey = config.persistedGeminiAPIKey
	}

	data, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.ResultLimit <= 0 || config.ResultLimit > maxResultLimit {
		return fmt.Errorf("ResultLimit debe estar entre 1 y %d", maxResultLimit)
	}

	switch config.Classifier {
	case "", ClassifierHeuristic, ClassifierAI:
	default:
		return fmt.Errorf("clasificador no soportado: %s", config.Classifier)
	}

	if config.AIConfig.ActiveAI != "" {
		supported := false
		for _, ai := range SupportedAIs() {
			if config.AIConfig.ActiveAI == ai {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("proveedor de IA no soportado: %s", config.AIConfig.ActiveAI)
		}
	}
	return nil
}
