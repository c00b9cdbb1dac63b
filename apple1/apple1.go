// Package apple1 wires together a cpu.Chip and a board.Board into the
// Manzana driver: the goroutine that runs the emulated machine, as
// opposed to the terminal collaborators that feed it keyboard events
// and consume its display output.
package apple1

import (
	"time"

	"github.com/rs/zerolog"

	"manzana/board"
	"manzana/cpu"
	"manzana/irq"
	"manzana/rom"
	"manzana/tecla"
)

const (
	initStackPointer = uint8(0xFD)
	romStart         = uint16(0xFF00)

	// instructionsPerYield is a bit mask over the instruction count:
	// Manzana sleeps whenever the low five bits are zero, i.e. once
	// every 32 instructions, keeping a busy CPU loop from starving
	// the keyboard/display goroutines on a GOMAXPROCS=1 build.
	instructionsPerYield = 0x1F
)

// Manzana is the top-level Apple 1 driver: a CPU bound to a board,
// with an IRQ source it polls each Step (the board itself never
// drives this; it exists so a future collaborator can).
type Manzana struct {
	cpu        *cpu.Chip
	powerOffIn <-chan struct{}
	irqSource  irq.Sender
	log        zerolog.Logger
}

// Config configures a new Manzana.
type Config struct {
	KeyboardIn  <-chan tecla.Key
	DisplayOut  chan<- tecla.Key
	PowerOffOut chan<- struct{}
	PowerOffIn  <-chan struct{}
	Seed        []SeedRegion
	IRQSource   irq.Sender
	Log         zerolog.Logger
}

// SeedRegion is a block of bytes to load into RAM before boot, below
// ROM_START, the way the CLI's seed-file argument does.
type SeedRegion struct {
	Addr uint16
	Data []uint8
}

// New constructs a Manzana: a Board seeded with the embedded monitor
// image plus any caller-supplied regions, and a Chip bound to it.
func New(cfg Config) *Manzana {
	b := board.New(romStart, rom.Monitor[:], cfg.KeyboardIn, cfg.DisplayOut, cfg.PowerOffOut)
	for _, region := range cfg.Seed {
		for i, v := range region.Data {
			// Seed loading predates CPU execution, so a write error
			// here (only possible past ROM_START) is a configuration
			// bug, not a runtime fault; panics surface it immediately
			// the way an assert would.
			if err := b.Write(region.Addr+uint16(i), v); err != nil {
				panic(err)
			}
		}
	}
	irqSource := cfg.IRQSource
	if irqSource == nil {
		irqSource = irq.None{}
	}
	chip := cpu.New(b, cpu.Allow)
	chip.S = initStackPointer
	return &Manzana{
		cpu:        chip,
		powerOffIn: cfg.PowerOffIn,
		irqSource:  irqSource,
		log:        cfg.Log,
	}
}

// Run executes the machine until a PowerOff signal arrives on
// PowerOffIn or Step returns a fatal error. BRK is treated as a
// soft reset, matching the monitor ROM's entry-point-as-reset-vector
// convention.
func (m *Manzana) Run() error {
	m.cpu.SetResetPending()
	m.log.Info().Msg("running Apple I emulator")

	instructions := 0
	for {
		exit, err := m.cpu.Step(m.irqSource.Raised())
		if err != nil {
			m.log.Error().Err(err).Msg("cpu step failed")
			return err
		}
		m.log.Debug().Interface("exit", exit).Msg("step")

		select {
		case <-m.powerOffIn:
			m.log.Info().Int("instructions", instructions).Msg("power off received")
			return nil
		default:
		}

		if exit.Kind == cpu.ExitExecuted && exit.Insn == cpu.InsnBRK {
			m.cpu.SetResetPending()
		}

		instructions++
		if instructions&instructionsPerYield == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}
