// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wiperCmd)
	rootCmd.AddCommand(normalizedCmd)
}

var (
	wiperCmd = &cobra.Command{
		Use:                   "wiper [flags] <position>",
		Short:                 "Set the wiper position",
		Long:                  `Set the wiper to a position in the range 0 to 1023.`,
		Args:                  cobra.ExactArgs(1),
		RunE:                  wiper,
		DisableFlagsInUseLine: true,
	}
	normalizedCmd = &cobra.Command{
		Use:                   "normalized [flags] <fraction>",
		Short:                 "Set the wiper position as a fraction of full scale",
		Long:                  `Set the wiper to a fraction of full scale in the range 0.0 to 1.0.`,
		Args:                  cobra.ExactArgs(1),
		RunE:                  normalized,
		DisableFlagsInUseLine: true,
	}
)

func wiper(cmd *cobra.Command, args []string) error {
	w, err := strconv.ParseInt(args[0], 0, 32)
	if err != nil {
		return fmt.Errorf("can't parse position '%s'", args[0])
	}
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()
	err = d.SetWiper(int(w))
	if err != nil {
		return err
	}
	fmt.Printf("wiper=%d (%.4f)\n", d.Wiper(), d.NormalizedWiper())
	return nil
}

func normalized(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("can't parse fraction '%s'", args[0])
	}
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()
	err = d.SetNormalizedWiper(v)
	if err != nil {
		return err
	}
	fmt.Printf("wiper=%d (%.4f)\n", d.Wiper(), d.NormalizedWiper())
	return nil
}
