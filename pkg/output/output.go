package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/medic-rust/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result for medic. Everything human-readable
// goes to stderr. For a failed check the remedy command, if any, is the
// only thing written to stdout.
func PrintResult(stdout, stderr io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(stderr, "%s[OK]%s %s\n", green, reset, r.Name)
		printDetails(stderr, r.Details)
		return
	}

	fmt.Fprintf(stderr, "%s[FAIL]%s %s\n", red, reset, r.Name)
	fmt.Fprintf(stderr, "      %s%s%s\n", red, r.Message, reset)
	printDetails(stderr, r.Details)
	printStream(stderr, "stdout", r.Stdout)
	printStream(stderr, "stderr", r.Stderr)

	if r.Remedy != "" {
		fmt.Fprintln(stdout, r.Remedy)
	}
}

func printDetails(w io.Writer, details []string) {
	for _, d := range details {
		fmt.Fprintf(w, "      %s\n", formatLabel(d))
	}
}

func printStream(w io.Writer, label string, text *string) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return
	}
	fmt.Fprintf(w, "%s%s:%s\n%s", dim, label, reset, *text)
	if !strings.HasSuffix(*text, "\n") {
		fmt.Fprintln(w)
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}
