package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/timer"
)

// console serializes writes from the prompt and from the timer goroutines.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

func (c *console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

// bellNotifier renders session signals on the terminal. The bell is the closest thing a
// terminal has to a vibration.
type bellNotifier struct {
	out io.Writer
}

func (n bellNotifier) SetCompleted(exIdx, setIdx int) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(n.out, "%s Set %d done. Rest for %s seconds, or 'skip'.\n", green("✅"), setIdx+1, restMenu())
}

func (n bellNotifier) RestFinished() {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(n.out, "\a\n%s\n> ", yellowBold("⏰ Rest is over, next set!"))
}

func restMenu() string {
	opts := make([]string, len(timer.RestMenu))
	for i, s := range timer.RestMenu {
		opts[i] = fmt.Sprint(s)
	}
	return strings.Join(opts, "/")
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

// progressBar draws percent (0-100) as a fixed-width bar.
func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
