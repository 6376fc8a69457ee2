// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

// Package spi provides a bit bashed SPI bus using GPIO lines.
//
// This is not related to the SPI device drivers provided by Linux.
package spi

import (
	"errors"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Line is a requested GPIO line.
//
// This is satisfied by *gpiocdev.Line.
type Line interface {
	SetValue(value int) error
	Value() (int, error)
	Close() error
}

// SPI represents a device connected to an SPI bus using 3 or 4 GPIO lines.
//
// The Ssz line is the active low chip select.
type SPI struct {
	// time between clock edges (i.e. half the cycle time)
	Tclk time.Duration
	Sclk Line
	Ssz  Line
	Mosi Line
	Miso Line
	cpol int
	cpha int
}

// ErrNoMiso indicates a read was attempted on a SPI without a Miso line.
var ErrNoMiso = errors.New("spi: no miso line")

// New creates a SPI.
//
// A negative miso indicates the device is write only and no Miso line is
// requested.
func New(c *gpiocdev.Chip, sclk, ssz, mosi, miso int, options ...Option) (*SPI, error) {
	s := SPI{}
	for _, option := range options {
		option(&s)
	}
	if s.Tclk == 0 {
		// default to 1MHz full cycle.
		s.Tclk = 500 * time.Nanosecond
	}
	if miso == mosi {
		return nil, errors.New("spi: shared mosi/miso line not supported")
	}
	var err error
	var l *gpiocdev.Line
	defer func() {
		if err != nil {
			s.Close()
		}
	}()
	// hold chip deselected until needed...
	l, err = c.RequestLine(ssz, gpiocdev.AsOutput(1))
	if err != nil {
		return nil, err
	}
	s.Ssz = l
	clkOpts := []gpiocdev.LineReqOption{gpiocdev.AsOutput(0)}
	if s.cpol != 0 {
		clkOpts = append(clkOpts, gpiocdev.AsActiveLow)
	}
	l, err = c.RequestLine(sclk, clkOpts...)
	if err != nil {
		return nil, err
	}
	s.Sclk = l
	l, err = c.RequestLine(mosi, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, err
	}
	s.Mosi = l
	if miso >= 0 {
		l, err = c.RequestLine(miso, gpiocdev.AsInput)
		if err != nil {
			return nil, err
		}
		s.Miso = l
	}
	return &s, nil
}

// Close releases allocated resources.
func (s *SPI) Close() error {
	var err error
	for _, l := range []Line{s.Sclk, s.Miso, s.Mosi, s.Ssz} {
		if l == nil {
			continue
		}
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Select asserts the chip select, leaving the clock idle.
func (s *SPI) Select() error {
	err := s.Sclk.SetValue(0)
	if err != nil {
		return err
	}
	time.Sleep(s.Tclk)
	return s.Ssz.SetValue(0)
}

// Deselect releases the chip select.
func (s *SPI) Deselect() error {
	time.Sleep(s.Tclk)
	return s.Ssz.SetValue(1)
}

// Write clocks out the bytes to the SPI device, MSB first.
//
// The caller is responsible for selecting the device.
func (s *SPI) Write(p []byte) error {
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			err := s.ClockOut(int(b>>uint(i)) & 0x01)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Read clocks in n bytes from the SPI device, MSB first.
//
// The caller is responsible for selecting the device.
func (s *SPI) Read(n int) ([]byte, error) {
	if s.Miso == nil {
		return nil, ErrNoMiso
	}
	p := make([]byte, n)
	for j := range p {
		var d byte
		for i := 0; i < 8; i++ {
			v, err := s.ClockIn()
			if err != nil {
				return nil, err
			}
			d = d << 1
			if v != 0 {
				d = d | 0x01
			}
		}
		p[j] = d
	}
	return p, nil
}

// ClockIn clocks in a data bit from the SPI device on Miso.
//
// Starts and ends just after the falling edge of the clock.
func (s *SPI) ClockIn() (int, error) {
	if s.Miso == nil {
		return 0, ErrNoMiso
	}
	time.Sleep(s.Tclk)
	err := s.Sclk.SetValue(1)
	if err != nil {
		return 0, err
	}
	if s.cpha == 1 {
		time.Sleep(s.Tclk)
	}
	v, err := s.Miso.Value()
	if err != nil {
		return 0, err
	}
	if s.cpha == 0 {
		time.Sleep(s.Tclk)
	}
	err = s.Sclk.SetValue(0)
	if err != nil {
		return 0, err
	}
	return v, err
}

// ClockOut clocks out a data bit to the SPI device on Mosi.
//
// Starts and ends just after the falling edge of the clock.
func (s *SPI) ClockOut(v int) error {
	if s.cpha == 1 {
		time.Sleep(s.Tclk)
	}
	err := s.Mosi.SetValue(v)
	if err != nil {
		return err
	}
	if s.cpha == 0 {
		time.Sleep(s.Tclk)
	}
	err = s.Sclk.SetValue(1)
	if err != nil {
		return err
	}
	time.Sleep(s.Tclk)
	return s.Sclk.SetValue(0)
}

// Option specifies a construction option for the SPI.
type Option func(*SPI)

// WithCPOL sets the cpol for the SPI.
func WithCPOL(cpol int) Option {
	return func(s *SPI) {
		s.cpol = cpol
	}
}

// WithCPHA sets the cpha for the SPI.
func WithCPHA(cpha int) Option {
	return func(s *SPI) {
		s.cpha = cpha
	}
}

// WithMode sets the cpol and cpha for the SPI from the SPI mode number.
func WithMode(mode int) Option {
	return func(s *SPI) {
		s.cpol = (mode >> 1) & 0x01
		s.cpha = mode & 0x01
	}
}

// WithTclk sets the clock period for the SPI.
//
// Note that this is the half-cycle period.
func WithTclk(tclk time.Duration) Option {
	return func(s *SPI) {
		s.Tclk = tclk
	}
}
