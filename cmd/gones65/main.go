// Command gones65 is the CLI host for the emulator core: it loads a
// ROM image, drives the machine through run/step/info subcommands,
// and prints disassembly and register dumps. It owns no rendering or
// input surface — that is explicitly out of scope for the core.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gones65/internal/machine"
	"gones65/internal/rom"
	"gones65/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gones65",
		Short: "SNES core emulator: 65C816 + SPC700 + register-file buses",
	}

	rootCmd.AddCommand(newRunCmd(), newStepCmd(), newInfoCmd(), newVersionCmd())
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("gones65: %v", err)
	}
}

func loadMachine(path string, waitRatio uint64) (*machine.Machine, error) {
	cart, err := rom.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gones65: %w", err)
	}
	if err := cart.RequireMinimumProfile(); err != nil {
		return nil, fmt.Errorf("gones65: %w", err)
	}
	m := machine.New(cart)
	if waitRatio > 0 {
		m.WaitRatio = waitRatio
	}
	return m, nil
}

func newRunCmd() *cobra.Command {
	var clockTicks uint64
	var waitRatio uint64
	var breakpointAddr string
	var showDisasm bool

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run the machine for a fixed number of main-CPU cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(args[0], waitRatio)
			if err != nil {
				return err
			}

			var breakpoint func(uint32) bool
			if breakpointAddr != "" {
				var addr uint32
				if _, err := fmt.Sscanf(breakpointAddr, "%x", &addr); err != nil {
					return fmt.Errorf("gones65: invalid --breakpoint %q: %w", breakpointAddr, err)
				}
				breakpoint = func(pc uint32) bool { return pc == addr }
			}

			var disasmFn func(uint32, string)
			if showDisasm {
				disasmFn = func(pc uint32, text string) { fmt.Println(text) }
			}

			consumed, hit, err := m.Run(clockTicks, breakpoint, disasmFn)
			if err != nil {
				return fmt.Errorf("gones65: %w", err)
			}
			fmt.Printf("consumed %d cycles", consumed)
			if hit {
				fmt.Printf(", stopped at breakpoint %s", breakpointAddr)
			}
			fmt.Println()
			printSnapshot(m)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&clockTicks, "clock-ticks", 1_000_000, "Master clock tick budget (divided by --wait-ratio to get CPU cycles)")
	cmd.Flags().Uint64Var(&waitRatio, "wait-ratio", machine.DefaultWaitRatio, "Master clock ticks per main-CPU cycle")
	cmd.Flags().StringVar(&breakpointAddr, "breakpoint", "", "Hex 24-bit address to stop at (e.g. 008000)")
	cmd.Flags().BoolVar(&showDisasm, "disasm", false, "Print each instruction as it executes")
	return cmd
}

func newStepCmd() *cobra.Command {
	var count int
	var waitRatio uint64
	var showDisasm bool

	cmd := &cobra.Command{
		Use:     "step <rom>",
		Aliases: []string{"step_n"},
		Short:   "Execute a fixed number of main-CPU instructions",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(args[0], waitRatio)
			if err != nil {
				return err
			}

			var disasmFn func(uint32, string)
			if showDisasm {
				disasmFn = func(pc uint32, text string) { fmt.Println(text) }
			}

			cycles, err := m.StepN(count, disasmFn)
			if err != nil {
				return fmt.Errorf("gones65: %w", err)
			}
			fmt.Printf("executed %d instructions, %d cycles\n", count, cycles)
			printSnapshot(m)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of instructions to execute")
	cmd.Flags().Uint64Var(&waitRatio, "wait-ratio", machine.DefaultWaitRatio, "Main-CPU cycles per SPC700 instruction step")
	cmd.Flags().BoolVar(&showDisasm, "disasm", false, "Print each instruction as it executes")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rom>",
		Short: "Print the parsed cartridge header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := rom.LoadFromFile(args[0])
			if err != nil {
				return fmt.Errorf("gones65: %w", err)
			}
			h := cart.Header()
			fmt.Printf("mapping:  %s\n", h.Mapping)
			fmt.Printf("chipset:  %#02x\n", h.Chipset)
			fmt.Printf("rom size: %#02x\n", h.ROMSize)
			fmt.Printf("ram size: %#02x\n", h.RAMSize)
			fmt.Printf("bytes:    %d\n", cart.Size())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	var detailed bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if detailed {
				version.PrintBuildInfo()
				return nil
			}
			fmt.Println(version.GetDetailedVersion())
			return nil
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Print the full build-info table")
	return cmd
}

func printSnapshot(m *machine.Machine) {
	s := m.CPU.Snapshot()
	fmt.Printf("PC=%02X:%04X A=%04X X=%04X Y=%04X S=%04X D=%04X DB=%02X E=%v stopped=%v waiting=%v\n",
		s.PB, s.PC, s.A, s.X, s.Y, s.S, s.D, s.DB, s.E, s.Stopped, s.Waiting)
}
