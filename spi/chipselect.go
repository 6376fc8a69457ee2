// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package spi

import (
	"github.com/warthog618/go-gpiocdev"
)

// ChipSelect is an active low chip select driven by a GPIO line.
//
// This allows a GPIO line to frame transactions on a bus that does not drive
// the chip select itself, such as a spidev bus opened without CS.
type ChipSelect struct {
	l Line
}

// NewChipSelect requests the line and holds the chip deselected.
func NewChipSelect(c *gpiocdev.Chip, offset int) (*ChipSelect, error) {
	l, err := c.RequestLine(offset, gpiocdev.AsOutput(1))
	if err != nil {
		return nil, err
	}
	return &ChipSelect{l: l}, nil
}

// NewChipSelectFromLine creates a ChipSelect from an already requested line.
func NewChipSelectFromLine(l Line) *ChipSelect {
	return &ChipSelect{l: l}
}

// Select asserts the chip select.
func (cs *ChipSelect) Select() error {
	return cs.l.SetValue(0)
}

// Deselect releases the chip select.
func (cs *ChipSelect) Deselect() error {
	return cs.l.SetValue(1)
}

// Close releases the line.
func (cs *ChipSelect) Close() error {
	return cs.l.Close()
}
