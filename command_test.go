// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

package ad5293

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWiperCommand(t *testing.T) {
	assert.Equal(t, Command(0x0400), WiperCommand(0))
	assert.Equal(t, Command(0x0600), WiperCommand(512))
	assert.Equal(t, Command(0x07ff), WiperCommand(1023))
	// only the payload bits are used
	assert.Equal(t, Command(0x0400), WiperCommand(1024))
	assert.Equal(t, Command(0x07ff), WiperCommand(-1))
}

func TestCommandBytes(t *testing.T) {
	patterns := []struct {
		c Command
		b [2]byte
	}{
		{CmdNormal, [2]byte{0x20, 0x00}},
		{CmdPowerDown, [2]byte{0x20, 0x01}},
		{CmdReset, [2]byte{0x10, 0x00}},
		{CmdWriteProtectDisable, [2]byte{0x18, 0x02}},
		{WiperCommand(0x2a5), [2]byte{0x06, 0xa5}},
	}
	for _, p := range patterns {
		b := p.c.Bytes()
		assert.Equal(t, p.b, b, p.c.String())
		c, err := ParseCommand(b[:])
		assert.Nil(t, err)
		assert.Equal(t, p.c, c)
	}
}

func TestCommandFields(t *testing.T) {
	assert.Equal(t, 1, CmdWiper.Opcode())
	assert.Equal(t, 4, CmdReset.Opcode())
	assert.Equal(t, 6, CmdWriteProtectDisable.Opcode())
	assert.Equal(t, 2, CmdWriteProtectDisable.Data())
	assert.Equal(t, 8, CmdNormal.Opcode())
	assert.Equal(t, 8, CmdPowerDown.Opcode())
	assert.Equal(t, 1, CmdPowerDown.Data())
	c := WiperCommand(777)
	assert.Equal(t, 1, c.Opcode())
	assert.Equal(t, 777, c.Data())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "normal", CmdNormal.String())
	assert.Equal(t, "power-down", CmdPowerDown.String())
	assert.Equal(t, "reset", CmdReset.String())
	assert.Equal(t, "wp-disable", CmdWriteProtectDisable.String())
	assert.Equal(t, "wiper(512)", WiperCommand(512).String())
	assert.Equal(t, "0x0800", Command(0x0800).String())
}

func TestParseCommand(t *testing.T) {
	_, err := ParseCommand(nil)
	assert.NotNil(t, err)
	_, err = ParseCommand([]byte{1, 2, 3})
	assert.NotNil(t, err)
	c, err := ParseCommand([]byte{0x07, 0xff})
	assert.Nil(t, err)
	assert.Equal(t, WiperCommand(1023), c)
}
