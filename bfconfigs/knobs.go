package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/vars"
)

const (
	DefaultROMSize = 1 << 16
	DefaultRAMSize = 30000
)

// ROMSize is the instruction memory capacity.
type ROMSize int

// RAMSize is the data memory size.
type RAMSize int

type JumpTable bool

// ZeroSentinel reproduces the staging register that never emits byte 0.
type ZeroSentinel bool

var (
	romSizeFlag      = cmds.Var[int]("-rom-size")
	ramSizeFlag      = cmds.Var[int]("-ram-size")
	jumpTableFlag    = cmds.Var[string]("-jump-table")
	zeroSentinelFlag = cmds.Var[string]("-zero-sentinel")
)

func init() {
	cmds.Describe("-rom-size", "instruction memory capacity")
	cmds.Describe("-ram-size", "data memory size")
	cmds.Describe("-jump-table", "precompute bracket jumps (true/false)")
	cmds.Describe("-zero-sentinel", "never emit byte 0 (true/false)")
}

func (Module) ROMSize(
	loader configs.Loader,
	logger logs.Logger,
) ROMSize {
	traceSources[int](logger, loader, "rom_size")
	return ROMSize(positive("rom size", vars.FirstNonZero(
		*romSizeFlag,
		configs.First[int](loader, "rom_size"),
		DefaultROMSize,
	)))
}

func (Module) RAMSize(
	loader configs.Loader,
	logger logs.Logger,
) RAMSize {
	traceSources[int](logger, loader, "ram_size")
	return RAMSize(positive("ram size", vars.FirstNonZero(
		*ramSizeFlag,
		configs.First[int](loader, "ram_size"),
		DefaultRAMSize,
	)))
}

func (Module) JumpTable(
	loader configs.Loader,
	logger logs.Logger,
) JumpTable {
	traceSources[bool](logger, loader, "jump_table")
	return JumpTable(flagOrConfig(*jumpTableFlag, loader, "jump_table"))
}

func (Module) ZeroSentinel(
	loader configs.Loader,
	logger logs.Logger,
) ZeroSentinel {
	traceSources[bool](logger, loader, "zero_sentinel")
	return ZeroSentinel(flagOrConfig(*zeroSentinelFlag, loader, "zero_sentinel"))
}

func positive(what string, n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%s must be positive, got %d", what, n))
	}
	return n
}

func flagOrConfig(flag string, loader configs.Loader, path string) bool {
	if flag != "" {
		return vars.StrToBool(flag)
	}
	return configs.First[bool](loader, path)
}

// traceSources logs every file that sets path, shadowed ones included.
func traceSources[T any](logger logs.Logger, loader configs.Loader, path string) {
	for file, value := range configs.All[T](loader, path) {
		logger.Debug("config value", "key", path, "file", file, "value", value)
	}
}
