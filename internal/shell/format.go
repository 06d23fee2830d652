package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/crimson-sun/sentiment/internal/model"
)

const ruleWidth = 50

var (
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
	titleColor    = color.New(color.Bold)
)

// Format writes a human-readable rendering of r for text: the text, a
// coloured sentiment line, the confidence as a percentage, and a separator.
// POSITIVE is green with a smile; every other label is red.
func Format(w io.Writer, text string, r model.Result) {
	c, emoji := negativeColor, "😟"
	if r.Label.IsPositive() {
		c, emoji = positiveColor, "😊"
	}

	fmt.Fprintf(w, "\nText: %s\n", text)
	c.Fprintf(w, "Sentiment: %s %s", r.Label, emoji)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Confidence: %.1f%%\n", r.Percent())
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, rule)
	titleColor.Fprintln(w, "     SENTIMENT ANALYZER")
	fmt.Fprintln(w, "     Powered by ONNX Runtime")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// PrintUsage writes the input hint shown once the model is ready.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Enter text to analyze (or 'quit' to exit)")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  - 'This is amazing!'")
	fmt.Fprintln(w, "  - 'I'm really disappointed'")
	fmt.Fprintln(w)
}
