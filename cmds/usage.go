package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	var lines [][2]string
	width := 0
	for _, name := range slices.Sorted(slices.Values(p.primary)) {
		command := p.commands[name]
		head := name
		fnType := command.Func.Type()
		for i := range fnType.NumIn() {
			head += " <" + strings.TrimPrefix(fnType.In(i).String(), "*") + ">"
		}
		head = strings.Join(append([]string{head}, command.Aliases...), ", ")
		width = max(width, len(head))
		lines = append(lines, [2]string{head, command.Description})
	}
	for _, line := range lines {
		fmt.Fprintf(w, "  %-*s  %s\n", width, line[0], line[1])
	}
}
