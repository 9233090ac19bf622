// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

// Command semtree tokenizes, parses, and renders JSON-like inputs.
//
// The lex subcommand turns raw input into token lines, the parse subcommand
// turns token files into rendered trees plus a report of findings, and the
// batch subcommand applies parse to every file in a directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/mjgray/semtree"
	"github.com/mjgray/semtree/ast"
	"github.com/mjgray/semtree/tokenfile"
)

var cli struct {
	Debug bool `help:"Enable debug logging." short:"d"`

	Lex   lexCmd   `cmd:"" help:"Tokenize raw input into token lines."`
	Parse parseCmd `cmd:"" help:"Parse token files and render their trees."`
	Batch batchCmd `cmd:"" help:"Parse every token file in a directory."`
}

type runContext struct {
	log logrus.FieldLogger
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("semtree"),
		kong.Description("A validating parser for JSON-like token streams."),
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cli.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx.FatalIfErrorf(ctx.Run(&runContext{log: log}))
}

type lexCmd struct {
	Input  string `arg:"" optional:"" help:"Path to input file. Reads stdin if omitted." type:"path"`
	Output string `help:"Path to output token file. Writes stdout if omitted." short:"o" type:"path"`
}

func (c *lexCmd) Run(rc *runContext) error {
	in := os.Stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	tokens := semtree.Tokenize(in)
	rc.log.WithField("tokens", len(tokens)).Debug("input tokenized")

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return tokenfile.Write(out, tokens)
}

type parseCmd struct {
	Inputs []string `arg:"" help:"Token files to parse." type:"existingfile"`
	Output string   `help:"Path to output file (single input only). Writes stdout if omitted." short:"o" type:"path"`
	Strict bool     `help:"Exit nonzero if any findings are reported."`
}

func (c *parseCmd) Run(rc *runContext) error {
	if c.Output != "" && len(c.Inputs) > 1 {
		return fmt.Errorf("-o accepts a single input, got %d", len(c.Inputs))
	}

	var total int
	for _, path := range c.Inputs {
		report, findings, err := processTokenFile(rc, path)
		if err != nil {
			return err
		}
		total += len(findings)

		out := os.Stdout
		if c.Output != "" {
			f, err := os.Create(c.Output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if _, err := fmt.Fprint(out, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if c.Strict && total > 0 {
		return fmt.Errorf("%d findings reported", total)
	}
	return nil
}

type batchCmd struct {
	InputDir  string `arg:"" help:"Directory of token files." type:"existingdir"`
	OutputDir string `arg:"" help:"Directory for rendered trees, created if absent." type:"path"`
	Workers   int    `help:"Number of files processed concurrently." default:"4"`
}

func (c *batchCmd) Run(rc *runContext) error {
	entries, err := os.ReadDir(c.InputDir)
	if err != nil {
		return fmt.Errorf("read input directory: %w", err)
	}
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pool, err := ants.NewPool(c.Workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		wg.Add(1)
		task := func() {
			defer wg.Done()
			report, findings, err := processTokenFile(rc, filepath.Join(c.InputDir, name))
			if err != nil {
				fail(err)
				return
			}
			dst := filepath.Join(c.OutputDir, "parsed_"+name+".txt")
			if err := os.WriteFile(dst, []byte(report), 0o644); err != nil {
				fail(fmt.Errorf("write %s: %w", dst, err))
				return
			}
			rc.log.WithFields(logrus.Fields{
				"input":    name,
				"output":   dst,
				"findings": len(findings),
			}).Info("file processed")
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			fail(fmt.Errorf("submit %s: %w", name, err))
		}
	}
	wg.Wait()
	return firstErr
}

// processTokenFile parses one token file and returns its rendered report:
// the indented tree followed by one line per finding.
func processTokenFile(rc *runContext, path string) (string, []ast.Error, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tokens, err := tokenfile.Read(f)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}

	root, findings := ast.Parse(tokens)
	rc.log.WithField("input", path).Debugf("parse tree: %s", spew.Sprint(root))

	var sb strings.Builder
	sb.WriteString(ast.FormatToString(root))
	for _, e := range findings {
		fmt.Fprintf(&sb, "%v\n", e)
	}
	return sb.String(), findings, nil
}
