package main

import (
	"context"
	"io"

	"github.com/Tharun135/docscan"
	"github.com/Tharun135/docscan/scan"
	"github.com/Tharun135/docscan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents docscan.DocumentService
	Issues    docscan.IssueService
	Knowledge docscan.KnowledgeService
	Feedback  docscan.FeedbackService
	Search    docscan.SearchService
	Embedder  docscan.Embedder
	Suggester docscan.Suggester
	Rules     *docscan.RuleSet
	Scanner   *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan     ScanCmd     `cmd:"" help:"Scan documentation files for style issues"`
	List     ListCmd     `cmd:"" help:"List scanned documents"`
	Show     ShowCmd     `cmd:"" help:"Show a document's issues"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a document and its issues"`
	Rules    RulesCmd    `cmd:"" help:"List registered rules"`
	Suggest  SuggestCmd  `cmd:"" help:"Suggest a rewrite for a sentence"`
	Feedback FeedbackCmd `cmd:"" help:"Record feedback on an issue"`
	Kb       KbCmd       `cmd:"" help:"Manage the style knowledge base"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Paths       []string `arg:"" help:"Files or directories to scan"`
	Categories  []string `short:"c" name:"category" help:"Restrict to rule categories (repeatable)"`
	Severity    string   `short:"s" help:"Minimum severity to report (info, warning, error)"`
	Suggest     bool     `help:"Attach rewrite suggestions to issues"`
	Save        bool     `help:"Persist documents and issues"`
	JSON        bool     `name:"json" help:"Emit machine-readable JSON"`
	FailOn      string   `name:"fail-on" help:"Exit non-zero when issues at or above this severity exist"`
	Dedup       bool     `default:"true" negatable:"" help:"Report repeated sentences once per run"`
	Concurrency int      `default:"4" help:"Concurrent file limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// RulesCmd is the "rules" subcommand.
type RulesCmd struct{}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Sentence string `arg:"" help:"Sentence to rewrite"`
	Category string `default:"vague_terms" help:"Issue category guiding the rewrite"`
	Message  string `default:"improve clarity" help:"Problem description guiding the rewrite"`
}

// FeedbackCmd is the "feedback" subcommand.
type FeedbackCmd struct {
	IssueID string `arg:"" help:"Issue ID"`
	Verdict string `arg:"" enum:"accepted,rejected" help:"Verdict: accepted or rejected"`
	Comment string `short:"m" help:"Optional comment"`
}

// KbCmd groups knowledge base subcommands.
type KbCmd struct {
	Add    KbAddCmd    `cmd:"" help:"Add a guidance chunk"`
	Import KbImportCmd `cmd:"" help:"Import guidance chunks from a markdown file"`
	List   KbListCmd   `cmd:"" help:"List guidance chunks"`
	Search KbSearchCmd `cmd:"" help:"Semantic search over guidance chunks"`
}

// KbAddCmd is the "kb add" subcommand.
type KbAddCmd struct {
	Category string `arg:"" help:"Chunk category"`
	Content  string `arg:"" help:"Guidance text"`
	Title    string `short:"t" help:"Chunk title"`
}

// KbImportCmd is the "kb import" subcommand.
type KbImportCmd struct {
	Path     string `arg:"" help:"Markdown file to import, split by headings"`
	Category string `arg:"" help:"Category assigned to imported chunks"`
}

// KbListCmd is the "kb list" subcommand.
type KbListCmd struct {
	Category string `short:"c" help:"Filter by category"`
}

// KbSearchCmd is the "kb search" subcommand.
type KbSearchCmd struct {
	Query    string  `arg:"" help:"Search query"`
	Category string  `short:"c" help:"Filter by category"`
	Limit    int     `default:"5" help:"Maximum results"`
	MinScore float32 `name:"min-score" help:"Minimum similarity score (0-1)"`
}
