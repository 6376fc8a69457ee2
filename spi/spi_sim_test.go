// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package spi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-ad5293"
	"github.com/warthog618/go-ad5293/spi"
	"github.com/warthog618/go-gpiocdev"
	"github.com/warthog618/go-gpiosim"
)

const (
	simSclk = iota
	simSsz
	simMosi
	simMiso
	simCS
)

func newSim(t *testing.T) (*gpiosim.Simpleton, *gpiocdev.Chip) {
	t.Helper()
	s, err := gpiosim.NewSimpleton(5)
	if err != nil {
		t.Skip("gpio-sim not available:", err)
	}
	t.Cleanup(func() { s.Close() })
	c, err := gpiocdev.NewChip(s.DevPath(), gpiocdev.WithConsumer("ad5293-test"))
	require.Nil(t, err)
	t.Cleanup(func() { c.Close() })
	return s, c
}

func TestNewOnSim(t *testing.T) {
	s, c := newSim(t)

	b, err := spi.New(c, simSclk, simSsz, simMosi, simMiso,
		spi.WithMode(2), spi.WithTclk(time.Microsecond))
	require.Nil(t, err)
	require.NotNil(t, b)
	defer b.Close()

	// deselected and idle
	v, err := s.Level(simSsz)
	require.Nil(t, err)
	assert.Equal(t, 1, v)
	// CPOL=1 so idle is high
	v, err = s.Level(simSclk)
	require.Nil(t, err)
	assert.Equal(t, 1, v)

	// lines already requested
	b2, err := spi.New(c, simSclk, simSsz, simMosi, -1)
	assert.NotNil(t, err)
	assert.Nil(t, b2)
}

func TestDeviceOnSim(t *testing.T) {
	s, c := newSim(t)

	b, err := spi.New(c, simSclk, simSsz, simMosi, -1, spi.WithMode(2))
	require.Nil(t, err)
	defer b.Close()
	d, err := ad5293.New(b, b, ad5293.WithWiper(100))
	require.Nil(t, err)
	err = d.SetWiper(512)
	require.Nil(t, err)
	assert.Equal(t, 512, d.Wiper())

	// chip select released after each command
	v, err := s.Level(simSsz)
	require.Nil(t, err)
	assert.Equal(t, 1, v)
}

func TestChipSelectOnSim(t *testing.T) {
	s, c := newSim(t)

	cs, err := spi.NewChipSelect(c, simCS)
	require.Nil(t, err)
	defer cs.Close()
	v, err := s.Level(simCS)
	require.Nil(t, err)
	assert.Equal(t, 1, v)

	err = cs.Select()
	require.Nil(t, err)
	v, err = s.Level(simCS)
	require.Nil(t, err)
	assert.Equal(t, 0, v)

	err = cs.Deselect()
	require.Nil(t, err)
	v, err = s.Level(simCS)
	require.Nil(t, err)
	assert.Equal(t, 1, v)
}
