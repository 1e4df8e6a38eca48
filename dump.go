package junctions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// junctionString renders a junction the way its constructor call would
// read: "all(1, 2, 3)". Elements appear in storage order.
func junctionString[T Element](k Kind, elems []T) string {
	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(')')
	return sb.String()
}

var kindPalette = map[Kind]*color.Color{
	KindNone: color.New(color.FgRed),
	KindOne:  color.New(color.FgYellow),
	KindAny:  color.New(color.FgGreen),
	KindAll:  color.New(color.FgBlue),
}

// Dump writes a diagnostic rendering of a junction's internals to w
// (for debugging purposes): the variant tag, the storage strategy, the
// element count and the elements themselves, wrapped to the terminal
// width when w is a terminal. The variant tag is colored on terminals;
// on other writers the output is plain text.
func Dump[T Element](j Junction[T], w io.Writer) {
	width, isTerm := outputWidth(w)
	tag := j.Kind().String()
	if isTerm {
		tag = kindPalette[j.Kind()].Sprint(tag)
	}
	backend := "ordered"
	if !j.Ordered() {
		backend = "view"
	}
	fmt.Fprintf(w, "%s junction, %s backend, %d element(s)\n", tag, backend, j.Len())
	line := "  "
	for _, e := range j.Elements() {
		item := fmt.Sprintf("%v ", e)
		if len(line)+len(item) > width && len(line) > 2 {
			fmt.Fprintln(w, strings.TrimRight(line, " "))
			line = "  "
		}
		line += item
	}
	if len(line) > 2 {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// outputWidth returns the usable line width for w and whether w is a
// terminal. Non-terminal writers get a fixed width of 80.
func outputWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		T().Errorf("junction dump: cannot determine terminal size: %v", err)
		return 80, true
	}
	return cols, true
}
