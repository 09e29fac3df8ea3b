package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Tharun135/docscan"
	"github.com/cespare/xxhash/v2"
)

// Run executes the kb add command.
func (c *KbAddCmd) Run(deps *Dependencies) error {
	category := docscan.Category(c.Category)
	if !docscan.ValidCategory(category) {
		fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
		return docscan.Errorf(docscan.EINVALID, "unknown category %q", c.Category)
	}

	chunk := &docscan.KnowledgeChunk{
		Category: category,
		Title:    c.Title,
		Content:  c.Content,
	}

	if deps.Embedder != nil {
		embedding, err := deps.Embedder.Embed(deps.Ctx, chunk.Content)
		if err != nil {
			if docscan.ErrorCode(err) != docscan.EUNAVAILABLE {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "warning: embedding unavailable, chunk stored without vector\n")
		} else {
			chunk.Embedding = embedding
		}
	}

	if err := deps.Knowledge.CreateChunk(deps.Ctx, chunk); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added chunk %s\n", chunk.ID)
	return nil
}

// Run executes the kb import command.
func (c *KbImportCmd) Run(deps *Dependencies) error {
	category := docscan.Category(c.Category)
	if !docscan.ValidCategory(category) {
		fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
		return docscan.Errorf(docscan.EINVALID, "unknown category %q", c.Category)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.Path, err)
		return err
	}

	sections := docscan.ExtractSections(string(data))

	var chunks []*docscan.KnowledgeChunk
	var skipped int
	batch := make(map[string]bool)
	for _, section := range sections {
		content := strings.TrimSpace(section.Content)
		if content == "" {
			continue
		}

		// Skip chunks already imported or repeated within this file
		hash := contentHash(content)
		if batch[hash] {
			skipped++
			continue
		}
		batch[hash] = true

		existing, err := deps.Knowledge.FindChunks(deps.Ctx, docscan.ChunkFilter{ContentHash: &hash})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			skipped++
			continue
		}

		chunks = append(chunks, &docscan.KnowledgeChunk{
			Category: category,
			Title:    section.Title,
			Content:  content,
		})
	}

	if len(chunks) == 0 {
		fmt.Fprintf(deps.Stdout, "Nothing to import (%d duplicate chunks skipped)\n", skipped)
		return nil
	}

	if deps.Embedder != nil {
		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Content
		}

		embeddings, err := deps.Embedder.EmbedBatch(deps.Ctx, texts)
		if err != nil {
			if docscan.ErrorCode(err) != docscan.EUNAVAILABLE {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "warning: embedding unavailable, chunks stored without vectors\n")
		} else {
			for i, chunk := range chunks {
				chunk.Embedding = embeddings[i]
			}
		}
	}

	if err := deps.Knowledge.CreateChunks(deps.Ctx, chunks); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d chunks", len(chunks))
	if skipped > 0 {
		fmt.Fprintf(deps.Stdout, " (%d duplicates skipped)", skipped)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// Run executes the kb list command.
func (c *KbListCmd) Run(deps *Dependencies) error {
	filter := docscan.ChunkFilter{}
	if c.Category != "" {
		category := docscan.Category(c.Category)
		if !docscan.ValidCategory(category) {
			fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
			return docscan.Errorf(docscan.EINVALID, "unknown category %q", c.Category)
		}
		filter.Category = &category
	}

	chunks, err := deps.Knowledge.FindChunks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	if len(chunks) == 0 {
		fmt.Fprintln(deps.Stdout, "No chunks found. Use 'docscan kb add' or 'docscan kb import' to create some.")
		return nil
	}

	for _, chunk := range chunks {
		title := chunk.Title
		if title == "" {
			title = firstLine(chunk.Content)
		}
		embedded := " "
		if len(chunk.Embedding) > 0 {
			embedded = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %-14s  %s\n", embedded, chunk.ID, chunk.Category, title)
	}

	return nil
}

// Run executes the kb search command.
func (c *KbSearchCmd) Run(deps *Dependencies) error {
	opts := docscan.SearchOptions{
		Limit:    c.Limit,
		MinScore: c.MinScore,
	}
	if c.Category != "" {
		category := docscan.Category(c.Category)
		if !docscan.ValidCategory(category) {
			fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
			return docscan.Errorf(docscan.EINVALID, "unknown category %q", c.Category)
		}
		opts.Categories = []docscan.Category{category}
	}

	results, err := deps.Search.Search(deps.Ctx, c.Query, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscan.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching chunks found.")
		return nil
	}

	for _, result := range results {
		title := result.Chunk.Title
		if title == "" {
			title = firstLine(result.Chunk.Content)
		}
		fmt.Fprintf(deps.Stdout, "%.3f  %-14s  %s\n", result.Score, result.Chunk.Category, title)
	}

	return nil
}

// contentHash mirrors the hash stored on chunks so duplicates can be
// detected before an insert.
func contentHash(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h)
	return hex.EncodeToString(b[:])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 72 {
		s = s[:72]
	}
	return s
}
