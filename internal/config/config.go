package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Embedding  EmbeddingConfig
	Chroma     ChromaConfig
	LLM        LLMConfig
	Generation GenerationConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type EmbeddingConfig struct {
	Source   string // "openai" or "ollama"
	OpenAI   OpenAIEmbeddingConfig
	Ollama   OllamaConfig
	CacheTTL time.Duration
}

type OpenAIEmbeddingConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type ChromaConfig struct {
	URL        string
	Collection string
}

type LLMConfig struct {
	Source   string // "deepseek" or "ollama"
	DeepSeek DeepSeekConfig
	Ollama   OllamaConfig
	Timeout  time.Duration
}

type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GenerationConfig struct {
	DefaultK            int
	DefaultNumQuestions int
	OverqueryFactor     int
	SimilarityThreshold float64
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("embedding.source", "ollama")
	viper.SetDefault("embedding.cache_ttl", 168)
	viper.SetDefault("chroma.collection", "medibot_chunks")
	viper.SetDefault("llm.source", "deepseek")
	viper.SetDefault("llm.deepseek.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("llm.deepseek.model", "deepseek-chat")
	viper.SetDefault("llm.timeout", 30)
	viper.SetDefault("generation.default_k", 5)
	viper.SetDefault("generation.default_num_questions", 3)
	viper.SetDefault("generation.overquery_factor", 10)
	viper.SetDefault("generation.similarity_threshold", 0.3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Embedding: EmbeddingConfig{
			Source: viper.GetString("embedding.source"),
			OpenAI: OpenAIEmbeddingConfig{
				APIKey: viper.GetString("embedding.openai.api_key"),
				Model:  viper.GetString("embedding.openai.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("embedding.ollama.server_url"),
				Model:     viper.GetString("embedding.ollama.model"),
			},
			CacheTTL: viper.GetDuration("embedding.cache_ttl") * time.Hour,
		},
		Chroma: ChromaConfig{
			URL:        viper.GetString("chroma.url"),
			Collection: viper.GetString("chroma.collection"),
		},
		LLM: LLMConfig{
			Source: viper.GetString("llm.source"),
			DeepSeek: DeepSeekConfig{
				APIKey:  viper.GetString("llm.deepseek.api_key"),
				BaseURL: viper.GetString("llm.deepseek.base_url"),
				Model:   viper.GetString("llm.deepseek.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
			Timeout: viper.GetDuration("llm.timeout") * time.Second,
		},
		Generation: GenerationConfig{
			DefaultK:            viper.GetInt("generation.default_k"),
			DefaultNumQuestions: viper.GetInt("generation.default_num_questions"),
			OverqueryFactor:     viper.GetInt("generation.overquery_factor"),
			SimilarityThreshold: viper.GetFloat64("generation.similarity_threshold"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
	}

	// Secrets and deployment endpoints come from the environment when set.
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		config.LLM.DeepSeek.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Embedding.OpenAI.APIKey = key
	}
	if url := os.Getenv("CHROMA_URL"); url != "" {
		config.Chroma.URL = url
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}
