// Package docscan provides a local, CLI-based style checker for technical
// documentation. It converts documents (Markdown, HTML, XML topics, plain
// text) to plain text, segments them into sentences, scans each sentence
// with style rule modules, and optionally enriches flagged issues with
// AI-generated rewrite suggestions grounded in a local vector knowledge
// base.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, ollama/, prose/).
package docscan
