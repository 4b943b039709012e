package docs_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/wealthdesk/cmd"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// commandLines returns the lines of the bash blocks of file that run wd.
func commandLines(t *testing.T, file string) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var lines []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(fcb.Language(content)) != "bash" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			line := strings.TrimSpace(string(seg.Value(content)))
			if strings.HasPrefix(line, "wd ") {
				lines = append(lines, line)
			}
		}
		return ast.WalkContinue, nil
	})
	return lines
}

// subcommand returns the command name of a "wd ..." line, skipping the
// global flags and their values.
func subcommand(line string) string {
	args := strings.Fields(line)[1:]
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			return a
		}
		if f := flag.CommandLine.Lookup(strings.TrimLeft(a, "-")); f != nil {
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				continue
			}
		}
		i++ // skip the value
	}
	return ""
}

func TestDocumentedCommandsExist(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("wd", flag.ContinueOnError), "wd")
	cmd.Register(commander)
	known := make(map[string]bool)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		known[c.Name()] = true
	})

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	var checked int
	for _, file := range files {
		for _, line := range commandLines(t, file) {
			checked++
			if name := subcommand(line); !known[name] {
				t.Errorf("%s: %q runs unknown command %q", file, line, name)
			}
		}
	}
	if checked == 0 {
		t.Error("no wd command found in the topics")
	}
}
