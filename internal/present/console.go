// Package present renders scan and generation results. The core pipeline
// only talks to an injected sink, so rendering can be tested headlessly.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/yaget/internal/provider"
	"github.com/Cyclone1070/yaget/internal/scan"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// NewGlamourRenderer creates the production markdown renderer.
func NewGlamourRenderer() (MarkdownRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
}

// Console writes results to a writer. renderer may be nil, in which case
// generated text is printed verbatim.
type Console struct {
	out         io.Writer
	renderer    MarkdownRenderer
	showPrompts bool
}

// NewConsole creates a Console sink.
func NewConsole(out io.Writer, renderer MarkdownRenderer, showPrompts bool) *Console {
	return &Console{out: out, renderer: renderer, showPrompts: showPrompts}
}

// Result prints one annotation unit paired with its suggestion.
func (c *Console) Result(unit scan.AnnotationUnit, prompt string, res *provider.GenerationResult) {
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("%s:%d", unit.SourceFile, unit.LineIndex+1)))
	fmt.Fprintln(c.out, markerStyle.Render(unit.MarkerLine))

	if c.showPrompts {
		fmt.Fprintln(c.out, faintStyle.Render("Prompt:"))
		fmt.Fprintln(c.out, prompt)
	}

	if res.GeneratedText == provider.NoSuggestion {
		fmt.Fprintln(c.out, errorStyle.Render(res.GeneratedText))
	} else {
		fmt.Fprintln(c.out, c.renderMarkdown(res.GeneratedText))
	}

	if res.ModelID != "" || res.TotalTokens > 0 {
		fmt.Fprintln(c.out, faintStyle.Render(fmt.Sprintf("model=%s tokens=%d", res.ModelID, res.TotalTokens)))
	}
	fmt.Fprintln(c.out, "------")
}

// Unit prints one annotation unit without a suggestion (scan-only mode).
func (c *Console) Unit(unit scan.AnnotationUnit) {
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("%s:%d", unit.SourceFile, unit.LineIndex+1)))
	fmt.Fprintln(c.out, markerStyle.Render(unit.MarkerLine))
	fmt.Fprintln(c.out, strings.Join(unit.Context, "\n"))
	fmt.Fprintln(c.out, "------")
}

// Summary prints the end-of-run totals.
func (c *Console) Summary(total, failed, totalTokens int) {
	line := fmt.Sprintf("%d annotation(s), %d without a suggestion, %d token(s) used", total, failed, totalTokens)
	fmt.Fprintln(c.out, faintStyle.Render(line))
}

func (c *Console) renderMarkdown(text string) string {
	if c.renderer == nil {
		return text
	}
	rendered, err := c.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}
