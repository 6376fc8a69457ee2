// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

// A utility to control an AD5293 digital potentiometer.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/go-ad5293"
	"github.com/warthog618/go-ad5293/spi"
	"github.com/warthog618/go-ad5293/spidev"
	"github.com/warthog618/go-gpiocdev"
	"github.com/warthog618/go-gpiocdev/device/rpi"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "ad5293ctl",
	Short: "ad5293ctl is a utility to control an AD5293 digital potentiometer",
	Long: "ad5293ctl is a utility to control an AD5293 digital potentiometer connected " +
		"to either GPIO lines, using bit bashed SPI, or a hardware SPI port.\n\n" +
		"The device is reset and the wiper set to the initial value before each command is applied.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootOpts = struct {
	Chip    string
	Sclk    int
	CS      int
	Mosi    int
	Tclk    time.Duration
	Spidev  string
	CSGpio  int
	Initial int
	Verbose bool
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootOpts.Chip, "chip", "c", "gpiochip0", "the GPIO chip for bit bashed SPI and GPIO chip select")
	pf.IntVar(&rootOpts.Sclk, "sclk", rpi.GPIO11, "the SCLK line offset for bit bashed SPI")
	pf.IntVar(&rootOpts.CS, "cs", rpi.GPIO6, "the SYNC (chip select) line offset for bit bashed SPI")
	pf.IntVar(&rootOpts.Mosi, "mosi", rpi.GPIO10, "the DIN line offset for bit bashed SPI")
	pf.DurationVar(&rootOpts.Tclk, "tclk", 500*time.Nanosecond, "the half-cycle clock period for bit bashed SPI")
	pf.StringVarP(&rootOpts.Spidev, "spidev", "s", "", "use the named hardware SPI port instead of bit bashing")
	pf.IntVar(&rootOpts.CSGpio, "cs-gpio", -1, "a GPIO line offset to use as chip select with --spidev (-1 for the port's own)")
	pf.IntVarP(&rootOpts.Initial, "initial", "i", 0, "the wiper position applied when the device is initialised")
	pf.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "trace the commands written to the device")
}

func main() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
}

func logErr(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "ad5293ctl %s: %s\n", cmd.Name(), err)
}

// device is an initialised AD5293 and the resources backing it.
type device struct {
	*ad5293.AD5293
	closers []io.Closer
	log     *zap.Logger
}

func (d *device) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i].Close()
	}
	if d.log != nil {
		d.log.Sync()
	}
}

func openDevice() (*device, error) {
	d := &device{}
	var bus ad5293.Bus
	var cs ad5293.ChipSelect
	var err error
	defer func() {
		if err != nil {
			d.Close()
		}
	}()
	if len(rootOpts.Spidev) != 0 {
		bus, cs, err = openSpidev(d)
	} else {
		bus, cs, err = openBitBash(d)
	}
	if err != nil {
		return nil, err
	}
	if rootOpts.Verbose {
		d.log, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		bus = &tracingBus{bus: bus, log: d.log.Sugar()}
	}
	d.AD5293, err = ad5293.New(bus, cs, ad5293.WithWiper(rootOpts.Initial))
	if err != nil {
		return nil, err
	}
	return d, nil
}

func openBitBash(d *device) (ad5293.Bus, ad5293.ChipSelect, error) {
	c, err := gpiocdev.NewChip(rootOpts.Chip, gpiocdev.WithConsumer("ad5293ctl"))
	if err != nil {
		return nil, nil, err
	}
	defer c.Close()
	s, err := spi.New(c, rootOpts.Sclk, rootOpts.CS, rootOpts.Mosi, -1,
		spi.WithMode(2), spi.WithTclk(rootOpts.Tclk))
	if err != nil {
		return nil, nil, fmt.Errorf("error requesting SPI lines: %w", err)
	}
	d.closers = append(d.closers, s)
	return s, s, nil
}

func openSpidev(d *device) (ad5293.Bus, ad5293.ChipSelect, error) {
	var opts []spidev.Option
	if rootOpts.CSGpio >= 0 {
		opts = append(opts, spidev.WithNoCS())
	}
	b, err := spidev.Open(rootOpts.Spidev, opts...)
	if err != nil {
		return nil, nil, err
	}
	d.closers = append(d.closers, b)
	if rootOpts.CSGpio < 0 {
		return b, spidev.KernelCS{}, nil
	}
	c, err := gpiocdev.NewChip(rootOpts.Chip, gpiocdev.WithConsumer("ad5293ctl"))
	if err != nil {
		return nil, nil, err
	}
	defer c.Close()
	cs, err := spi.NewChipSelect(c, rootOpts.CSGpio)
	if err != nil {
		return nil, nil, fmt.Errorf("error requesting chip select line: %w", err)
	}
	d.closers = append(d.closers, cs)
	return b, cs, nil
}
