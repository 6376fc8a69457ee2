// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/go-ad5293"
	"github.com/warthog618/go-ad5293/spi"
	"github.com/warthog618/go-gpiocdev"
	"github.com/warthog618/go-gpiocdev/device/rpi"
)

// This example sweeps the wiper of an AD5293 connected to the RPI by three
// data lines - SYNC (chip select), SCLK and DIN - from zero to full scale,
// then powers the device down. The default pin assignments are defined in
// loadConfig, but can be altered via configuration (env, flag or config file).
// All pins are outputs so do not run this example on a board where those pins
// serve other purposes.
func main() {
	cfg := loadConfig()
	step := int(cfg.MustGet("step").Int())
	if step < 1 {
		step = 1
	}
	dwell := cfg.MustGet("dwell").Duration()
	chip := cfg.MustGet("gpiochip").String()
	c, err := gpiocdev.NewChip(chip, gpiocdev.WithConsumer("ad5293"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ad5293: %s\n", err)
		os.Exit(1)
	}
	s, err := spi.New(
		c,
		int(cfg.MustGet("sclk").Int()),
		int(cfg.MustGet("cs").Int()),
		int(cfg.MustGet("mosi").Int()),
		-1,
		spi.WithMode(2),
		spi.WithTclk(cfg.MustGet("tclk").Duration()))
	c.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ad5293: %s\n", err)
		os.Exit(1)
	}
	defer s.Close()
	d, err := ad5293.New(s, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ad5293: %s\n", err)
		return
	}
	for w := 0; w <= ad5293.MaxWiper; w += step {
		if err = d.SetWiper(w); err != nil {
			fmt.Printf("error setting wiper %d: %s\n", w, err)
			return
		}
		fmt.Printf("wiper=%4d (%.3f)\n", d.Wiper(), d.NormalizedWiper())
		time.Sleep(dwell)
	}
	if err = d.SetNormalizedWiper(1.0); err != nil {
		fmt.Printf("error setting full scale: %s\n", err)
		return
	}
	if err = d.Shutdown(); err != nil {
		fmt.Printf("error shutting down: %s\n", err)
		return
	}
	fmt.Printf("mode=%s\n", d.Mode())
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"gpiochip": "gpiochip0",
		"tclk":     "500ns",
		"step":     64,
		"dwell":    "100ms",
		"cs":       rpi.J8p31,
		"sclk":     rpi.J8p23,
		"mosi":     rpi.J8p19,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	flags := []pflag.Flag{
		{Short: 'c', Name: "config-file"},
	}
	cfg := config.New(
		pflag.New(pflag.WithFlags(flags)),
		env.New(env.WithEnvPrefix("AD5293_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "ad5293.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust())
	return cfg
}
