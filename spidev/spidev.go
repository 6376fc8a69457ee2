// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

// Package spidev provides a SPI bus using a hardware SPI port, such as the
// Linux spidev driver.
package spidev

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Bus is a write only SPI bus on a hardware port.
type Bus struct {
	c spi.Conn
	// only set if opened by Open
	p    spi.PortCloser
	freq physic.Frequency
	mode spi.Mode
}

// New connects to the port.
//
// The port remains owned by the caller.
func New(p spi.Port, options ...Option) (*Bus, error) {
	b := Bus{
		freq: 5 * physic.MegaHertz,
		mode: spi.Mode2,
	}
	for _, option := range options {
		option(&b)
	}
	c, err := p.Connect(b.freq, b.mode, 8)
	if err != nil {
		return nil, fmt.Errorf("spidev: %w", err)
	}
	b.c = c
	return &b, nil
}

// Open initialises the host drivers and opens the named port.
//
// An empty name opens the first available port.
func Open(name string, options ...Option) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("spidev: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("spidev: %w", err)
	}
	b, err := New(p, options...)
	if err != nil {
		p.Close()
		return nil, err
	}
	b.p = p
	return b, nil
}

// Write writes the bytes to the device as a single transaction.
func (b *Bus) Write(p []byte) error {
	return b.c.Tx(p, nil)
}

// String returns the name of the underlying connection.
func (b *Bus) String() string {
	return b.c.String()
}

// Close releases the port if it was opened by Open.
func (b *Bus) Close() error {
	if b.p == nil {
		return nil
	}
	err := b.p.Close()
	b.p = nil
	return err
}

// KernelCS is a chip select driven by the SPI port itself.
//
// The port asserts the chip select for the duration of each Write, so Select
// and Deselect do nothing.
type KernelCS struct{}

// Select does nothing.
func (KernelCS) Select() error {
	return nil
}

// Deselect does nothing.
func (KernelCS) Deselect() error {
	return nil
}

// Option specifies a construction option for the Bus.
type Option func(*Bus)

// WithFrequency sets the clock frequency of the bus.
func WithFrequency(f physic.Frequency) Option {
	return func(b *Bus) {
		b.freq = f
	}
}

// WithMode sets the SPI mode of the bus.
//
// Defaults to Mode2.
func WithMode(m spi.Mode) Option {
	return func(b *Bus) {
		b.mode = (b.mode & spi.NoCS) | m
	}
}

// WithNoCS prevents the port driving the chip select.
//
// A separate ChipSelect, such as a GPIO line, must be used to frame
// transactions.
func WithNoCS() Option {
	return func(b *Bus) {
		b.mode |= spi.NoCS
	}
}
