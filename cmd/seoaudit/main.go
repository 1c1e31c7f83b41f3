package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/gemini"
	"github.com/TravisXO/CanonicalSeoAuditor/goquery"
	seohttp "github.com/TravisXO/CanonicalSeoAuditor/http"
	seoslog "github.com/TravisXO/CanonicalSeoAuditor/slog"
	"github.com/TravisXO/CanonicalSeoAuditor/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	AuditStore seoaudit.AuditStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seoaudit"),
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
		return fmt.Errorf("no command specified. Run 'seoaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command, independent of any global flags preceding
	// it on the command line.
	command := strings.Fields(kongCtx.Command())[0]

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SEOAUDIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AuditStore = sqlite.NewAuditService(m.DB)
	deps.DB = m.DB
	deps.Audits = m.AuditStore

	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{
		Level: logLevel(cli.Verbose),
	}))

	deps.Auditor = seoslog.NewLoggingAuditor(goquery.NewAuditor(), logger)
	deps.Fetcher = seoslog.NewLoggingFetcher(
		seohttp.NewFetcher(seohttp.WithProber(seohttp.NewProber())), logger)
	defer deps.Fetcher.Close()

	if command == "explain" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Advisor = gemini.NewAdvisor(client)
	}

	return kongCtx.Run(deps)
}

func logLevel(verbose bool) stdslog.Level {
	if verbose {
		return stdslog.LevelInfo
	}
	return stdslog.LevelWarn
}

func defaultDBPath() string {
	if path := os.Getenv("SEOAUDIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seoaudit.db"
	}
	dir := filepath.Join(home, ".seoaudit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "seoaudit.db")
}
