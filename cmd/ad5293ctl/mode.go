// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warthog618/go-ad5293"
)

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(shutdownCmd)
	rootCmd.AddCommand(wakeCmd)
}

var (
	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the device",
		Long:  `Reset the device, returning the wiper to mid-scale, and disable write protection.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return apply((*ad5293.AD5293).Reset)
		},
	}
	shutdownCmd = &cobra.Command{
		Use:   "shutdown",
		Short: "Place the device in power-down mode",
		Long: `Place the device in power-down mode.

The W terminal is connected to B and the A terminal is opened.
The wiper register is preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return apply((*ad5293.AD5293).Shutdown)
		},
	}
	wakeCmd = &cobra.Command{
		Use:   "wake",
		Short: "Return the device to normal mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return apply((*ad5293.AD5293).Wake)
		},
	}
)

func apply(op func(*ad5293.AD5293) error) error {
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()
	err = op(d.AD5293)
	if err != nil {
		return err
	}
	fmt.Printf("mode=%s\n", d.Mode())
	return nil
}
