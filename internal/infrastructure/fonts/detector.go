// Package fonts enumerates installed font families through fontconfig.
package fonts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/logging"
)

// DefaultCommand is the fontconfig binary used to list families.
const DefaultCommand = "fc-list"

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Option configures a Detector.
type Option func(*Detector)

// WithCommand overrides the fc-list invocation. The value is split like a
// shell command line, so wrappers work:
//
//	flatpak-spawn --host fc-list
//
// Blank or unparsable values keep the default.
func WithCommand(command string) Option {
	return func(d *Detector) {
		argv, err := ParseCommand(command)
		if err != nil || len(argv) == 0 {
			return
		}
		d.command, d.prefixArgs = argv[0], argv[1:]
	}
}

// ParseCommand splits a configured command line into argv.
func ParseCommand(command string) ([]string, error) {
	argv, err := shellwords.Parse(strings.TrimSpace(command))
	if err != nil {
		return nil, fmt.Errorf("invalid font command %q: %w", command, err)
	}
	return argv, nil
}

// WithRunner replaces command execution, mostly for tests.
func WithRunner(run Runner, lookPath func(string) (string, error)) Option {
	return func(d *Detector) {
		d.run = run
		d.lookPath = lookPath
	}
}

// Detector implements port.FontLister using fontconfig's fc-list command.
// Every call queries fontconfig again; nothing is cached.
type Detector struct {
	command    string
	prefixArgs []string
	run        Runner
	lookPath   func(string) (string, error)
}

// NewDetector creates a new font detector.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		command:  DefaultCommand,
		run:      execRunner,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsAvailable implements port.FontLister.
func (d *Detector) IsAvailable(_ context.Context) bool {
	_, err := d.lookPath(d.command)
	return err == nil
}

// ListInstalledFonts implements port.FontLister.
// Returns de-duplicated family names sorted case-insensitively.
func (d *Detector) ListInstalledFonts(ctx context.Context, opts port.FontListOptions) ([]string, error) {
	log := logging.FromContext(ctx)

	args := append(append([]string{}, d.prefixArgs...), ":", "family")
	output, err := d.run(ctx, d.command, args...)
	if err != nil {
		log.Debug().Err(err).Str("command", d.command).Msg("failed to query system fonts")
		return nil, fmt.Errorf("failed to list fonts: %w", err)
	}

	families, err := parseFamilies(output)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font list: %w", err)
	}

	if !opts.DisableQuoting {
		for i, family := range families {
			families[i] = quoteFamily(family)
		}
	}

	log.Debug().Int("count", len(families)).Bool("quoted", !opts.DisableQuoting).Msg("listed system fonts")
	return families, nil
}

// parseFamilies splits fc-list output into unique family names.
func parseFamilies(output []byte) ([]string, error) {
	fontSet := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Fonts with aliases come back comma-separated,
		// e.g. "DejaVu Sans,DejaVu Sans Light".
		for _, family := range strings.Split(line, ",") {
			family = strings.TrimSpace(strings.ReplaceAll(family, `\-`, "-"))
			if family != "" {
				fontSet[family] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	fonts := make([]string, 0, len(fontSet))
	for font := range fontSet {
		fonts = append(fonts, font)
	}
	sort.Slice(fonts, func(i, j int) bool {
		a, b := strings.ToLower(fonts[i]), strings.ToLower(fonts[j])
		if a == b {
			return fonts[i] < fonts[j]
		}
		return a < b
	})
	return fonts, nil
}

// quoteFamily wraps names containing whitespace in double quotes so the
// result is usable as a CSS font-family entry.
func quoteFamily(family string) string {
	if !strings.ContainsAny(family, " \t") {
		return family
	}
	return `"` + strings.ReplaceAll(family, `"`, `\"`) + `"`
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
