// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

// Package mcu adapts TinyGo SPI buses and pins for use with the AD5293
// driver.
package mcu

import (
	"tinygo.org/x/drivers"
)

// Bus is a write only SPI bus on a TinyGo SPI peripheral.
type Bus struct {
	SPI drivers.SPI
}

// Write writes the bytes to the device, discarding any bytes read.
func (b Bus) Write(p []byte) error {
	return b.SPI.Tx(p, nil)
}

// Pin is an output pin, such as a TinyGo machine.Pin.
type Pin interface {
	High()
	Low()
}

// PinCS is an active low chip select driven by a Pin.
//
// The pin must already be configured as an output.
type PinCS struct {
	Pin Pin
}

// Select drives the pin low.
func (cs PinCS) Select() error {
	cs.Pin.Low()
	return nil
}

// Deselect drives the pin high.
func (cs PinCS) Deselect() error {
	cs.Pin.High()
	return nil
}
