package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tomlSectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration with a stable layout: keys in
// struct order, tables sorted by name.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeOrdered returns the TOML encoding written by WriteConfigOrdered.
func EncodeOrdered(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

type tomlSection struct {
	header string
	lines  []string
}

// sortTOMLSections reorders tables alphabetically, keeping top-level keys first.
func sortTOMLSections(content string) string {
	var preamble []string
	var sections []tomlSection

	for _, line := range strings.Split(content, "\n") {
		if match := tomlSectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, tomlSection{header: match[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	blocks := make([]string, 0, len(sections)+1)
	if head := strings.TrimRight(strings.Join(preamble, "\n"), "\n"); strings.TrimSpace(head) != "" {
		blocks = append(blocks, head)
	}
	for _, sec := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(sec.lines, "\n"), "\n"))
	}

	output := strings.Join(blocks, "\n\n")
	if output != "" {
		output += "\n"
	}
	return output
}
