package bfvm

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

type NewMachine func(input io.Reader, output io.Writer) *Machine

func (Module) NewMachine(
	romSize bfconfigs.ROMSize,
	ramSize bfconfigs.RAMSize,
	jumpTable bfconfigs.JumpTable,
	zeroSentinel bfconfigs.ZeroSentinel,
	logger logs.Logger,
) NewMachine {
	return func(input io.Reader, output io.Writer) *Machine {
		logger.Debug("new machine",
			"rom_size", romSize,
			"ram_size", ramSize,
			"jump_table", jumpTable,
			"zero_sentinel", zeroSentinel,
		)
		return New(
			int(romSize),
			int(ramSize),
			WithInput(input),
			WithOutput(output),
			WithLogger(logger),
			WithJumpTable(bool(jumpTable)),
			WithZeroSentinel(bool(zeroSentinel)),
		)
	}
}
