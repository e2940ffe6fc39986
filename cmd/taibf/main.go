package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

var (
	programFile = cmds.Var[string]("-file")
	tapOnFault  = cmds.Switch("-tap")
)

func init() {
	cmds.Describe("-file", "program file to run")
	cmds.Describe("-tap", "open a starlark REPL on fault")
}

func main() {
	cmds.Execute(os.Args[1:])

	if *programFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program> is required")
		os.Exit(1)
	}
	program, err := os.ReadFile(*programFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scope := dscope.New(
		new(bfvm.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		newMachine bfvm.NewMachine,
		newSpan logs.NewSpan,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, _ = newSpan(ctx, *programFile)

		machine := newMachine(os.Stdin, os.Stdout)
		if err := machine.LoadProgram(program); err != nil {
			logger.ErrorContext(ctx, "load program", "file", *programFile, "error", err)
			stop()
			os.Exit(1)
		}

		if err := machine.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "execution halted", "error", err)
			if *tapOnFault {
				tap(ctx, "fault", machine.Globals())
			}
			stop()
			os.Exit(1)
		}
	})
}
