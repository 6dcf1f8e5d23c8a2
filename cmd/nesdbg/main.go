// Command nesdbg loads an iNES ROM and either prints its header/mapper
// information or single-steps the CPU core for inspection, in one
// flag-driven entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yoshiomiyamae/gones6502/pkg/cartridge"
	"github.com/yoshiomiyamae/gones6502/pkg/logger"
	"github.com/yoshiomiyamae/gones6502/pkg/machine"
)

func main() {
	logLevel := flag.String("log-level", "info", "off|error|warn|info|debug|trace")
	logFile := flag.String("log-file", "", "write log output to this file instead of stdout")
	cpuLog := flag.Bool("cpu-log", false, "log each instruction fetched")
	mapperLog := flag.Bool("mapper-log", false, "log mapper bank-select writes")
	busLog := flag.Bool("bus-log", false, "log bus read/write routing")
	steps := flag.Int("steps", 0, "single-step the CPU this many instructions and dump state after each")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nesdbg [flags] <rom-file>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	if err := logger.Initialize(logger.GetLogLevelFromString(*logLevel), *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "nesdbg: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	logger.SetCPULogging(*cpuLog)
	logger.SetMapperLogging(*mapperLog)
	logger.SetBusLogging(*busLog)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		logger.LogError("reading %s: %v", romPath, err)
		os.Exit(1)
	}

	cart, err := cartridge.Load(rom, nil)
	if err != nil {
		logger.LogError("loading %s: %v", romPath, err)
		os.Exit(1)
	}

	logger.LogInfo("=== ROM: %s ===", romPath)
	logger.LogInfo("mapper %d, PRG %d x 16KiB, CHR %d x 8KiB, mirroring %s, battery %v",
		cart.Header.MapperID, cart.Header.PRGUnits, cart.Header.CHRUnits, cart.Mirroring(), cart.Header.HasBattery)

	m := machine.New()
	m.LoadCartridge(cart)
	m.Reset()

	logger.LogInfo("=== Reset state ===")
	logger.LogInfo("PC=$%04X SP=$%02X P=$%02X", m.CPU.PC, m.CPU.SP, m.CPU.P)

	for i := 0; i < *steps; i++ {
		cycles := m.RunInstruction()
		m.PollVideoSignals()
		logger.LogInfo("step %d (%d cycles):\n%s", i, cycles, m.CPU.Dump())
	}
}
