package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/etree"
	"github.com/Tharun135/docscan/gemini"
	"github.com/Tharun135/docscan/gocache"
	"github.com/Tharun135/docscan/goquery"
	"github.com/Tharun135/docscan/htmltomarkdown"
	"github.com/Tharun135/docscan/ollama"
	"github.com/Tharun135/docscan/prose"
	"github.com/Tharun135/docscan/rules"
	"github.com/Tharun135/docscan/scan"
	docslog "github.com/Tharun135/docscan/slog"
	"github.com/Tharun135/docscan/sqlite"
	"github.com/Tharun135/docscan/trafilatura"
	"github.com/Tharun135/docscan/vector"
	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config holds environment configuration. A .env file in the working
// directory is loaded first; real environment variables win.
type Config struct {
	DBPath       string  `env:"DOCSCAN_DB"`
	OllamaURL    string  `env:"DOCSCAN_OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel  string  `env:"DOCSCAN_OLLAMA_MODEL" envDefault:"llama3.2"`
	EmbedModel   string  `env:"DOCSCAN_EMBED_MODEL" envDefault:"nomic-embed-text"`
	GeminiAPIKey string  `env:"GEMINI_API_KEY"`
	GeminiModel  string  `env:"DOCSCAN_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	SuggestRPS   float64 `env:"DOCSCAN_SUGGEST_RPS" envDefault:"2"`
	LogLevel     string  `env:"DOCSCAN_LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig reads configuration from .env and the environment.
func LoadConfig() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg, nil
}

// Main represents the program.
type Main struct {
	// Configuration. Set before calling Run() to override the environment.
	Config *Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService  docscan.DocumentService
	IssueService     docscan.IssueService
	KnowledgeService docscan.KnowledgeService
	FeedbackService  docscan.FeedbackService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.Config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		m.Config = cfg
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Rules:  rules.Default(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.IssueService = sqlite.NewIssueService(m.DB)
	m.KnowledgeService = sqlite.NewKnowledgeService(m.DB)
	m.FeedbackService = sqlite.NewFeedbackService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Issues = m.IssueService
	deps.Knowledge = m.KnowledgeService
	deps.Feedback = m.FeedbackService

	logger := newLogger(stderr, m.Config.LogLevel)

	// Wire model-backed dependencies based on command
	needsEmbedder := cmd == "kb" || cmd == "suggest" || (cmd == "scan" && cli.Scan.Suggest)
	if needsEmbedder {
		client := ollama.NewClient(m.Config.OllamaURL)
		deps.Embedder = ollama.NewEmbedder(client, m.Config.EmbedModel)
		deps.Search = docslog.NewLoggingSearchService(
			vector.NewSearchService(m.KnowledgeService, deps.Embedder), logger)
	}

	needsSuggester := cmd == "suggest" || (cmd == "scan" && cli.Scan.Suggest)
	if needsSuggester {
		suggester, err := m.buildSuggester(ctx, deps.Search, logger)
		if err != nil {
			return err
		}
		deps.Suggester = suggester
	}

	if cmd == "scan" {
		deps.Scanner = &scan.Scanner{
			Segmenter:         prose.NewSegmenter(),
			Rules:             deps.Rules,
			Converter:         htmltomarkdown.NewConverter(),
			HTMLExtractor:     trafilatura.NewExtractor(),
			FallbackExtractor: goquery.NewExtractor(),
			XMLExtractor:      etree.NewExtractor(),
			Suggester:         deps.Suggester,
			Documents:         m.DocumentService,
			Issues:            m.IssueService,
			Limiter:           scan.NewSuggestLimiter(m.Config.SuggestRPS),
			Concurrency:       cli.Scan.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// buildSuggester assembles the suggestion chain: cache over a local model,
// then Gemini when an API key is configured, then rule-based rewrites.
func (m *Main) buildSuggester(ctx context.Context, search docscan.SearchService, logger *slog.Logger) (docscan.Suggester, error) {
	client := ollama.NewClient(m.Config.OllamaURL)

	chain := []docscan.Suggester{
		ollama.NewSuggester(client, search, m.Config.OllamaModel),
	}

	if m.Config.GeminiAPIKey != "" {
		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.Config.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create token counter: %w", err)
		}

		chain = append(chain, gemini.NewSuggester(genaiClient, search, counter, m.Config.GeminiModel))
	}

	chain = append(chain, rules.NewSuggester())

	suggester := docscan.NewSuggesterChain(chain...)
	return gocache.NewSuggester(docslog.NewLoggingSuggester(suggester, logger)), nil
}

// tokenizerModel is used for token counting; it must be a model the local
// tokenizer supports.
const tokenizerModel = "gemini-2.5-flash"

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docscan.db"
	}
	dir := filepath.Join(home, ".docscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docscan.db")
}
