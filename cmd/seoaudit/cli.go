package main

import (
	"context"
	"io"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Fetcher seoaudit.Fetcher
	Auditor seoaudit.Auditor
	Audits  seoaudit.AuditStore
	Advisor seoaudit.Advisor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and audit operations"`

	Audit   AuditCmd   `cmd:"" help:"Fetch and audit a page"`
	Batch   BatchCmd   `cmd:"" help:"Audit multiple URLs concurrently"`
	List    ListCmd    `cmd:"" help:"List stored audits"`
	Show    ShowCmd    `cmd:"" help:"Show a stored audit"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored audit"`
	Explain ExplainCmd `cmd:"" help:"Explain a stored audit using Gemini"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL  string `arg:"" help:"Page URL to audit"`
	Save bool   `short:"s" help:"Store the audit in history"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"Page URLs to audit"`
	Save        bool     `short:"s" help:"Store each audit in history"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent audit limit"`
	RPS         float64  `default:"2" help:"Requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `short:"u" help:"Only audits of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum audits to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Audit ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Audit ID"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	ID string `arg:"" help:"Audit ID"`
}
