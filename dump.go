package treap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an indented rendering of the internal tree structure to w, one
// node per line, children as stored. Nodes carrying pending tags are printed
// in colour if w is a terminal.
func (t *Tree[T]) Dump(w io.Writer) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	plain := color.New(color.FgBlue)
	tagged := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		plain.EnableColor()
		tagged.EnableColor()
	} else {
		plain.DisableColor()
		tagged.DisableColor()
	}
	err := t.eachNode(func(n *node[T], depth int) error {
		line := fmt.Sprintf("%s%v [n=%d sum=%v min=%v max=%v prio=%016x]",
			strings.Repeat("  ", depth), n.value, n.size, n.sum, n.min, n.max, n.priority)
		c := plain
		if n.rev || n.hasAdd {
			c = tagged
			if n.rev {
				line += " rev"
			}
			if n.hasAdd {
				line += fmt.Sprintf(" add=%v", n.add)
			}
		}
		_, err := c.Fprintln(w, line)
		return err
	})
	if err != nil {
		tracer().Errorf("treap dump: %s", err.Error())
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
