// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

package ad5293

import (
	"encoding/binary"
	"fmt"
)

// Command is a 16-bit command word written to the device.
//
// Bits 10-13 hold the opcode and bits 0-9 the data payload.
type Command uint16

const (
	// CmdWiper writes the data payload to the RDAC register.
	CmdWiper Command = 0x0400

	// CmdReset refreshes the RDAC register to mid-scale.
	CmdReset Command = 0x1000

	// CmdWriteProtectDisable allows RDAC writes to update the wiper.
	CmdWriteProtectDisable Command = 0x1802

	// CmdNormal places the device in normal mode.
	CmdNormal Command = 0x2000

	// CmdPowerDown places the device in power-down mode.
	//
	// The W terminal is tied to B and A is opened. The RDAC register contents
	// are preserved.
	CmdPowerDown Command = 0x2001
)

const (
	dataMask   = 0x03ff
	opcodeMask = 0x3c00
)

// WiperCommand returns the command that sets the RDAC register to w.
//
// Only the low 10 bits of w are used.
func WiperCommand(w int) Command {
	return CmdWiper | Command(w&dataMask)
}

// Bytes returns the command as it is sent on the wire, MSB first.
func (c Command) Bytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(c))
	return b
}

// Opcode returns the opcode bits of the command, shifted down to bit 0.
func (c Command) Opcode() int {
	return int(c&opcodeMask) >> 10
}

// Data returns the 10-bit data payload of the command.
func (c Command) Data() int {
	return int(c & dataMask)
}

func (c Command) String() string {
	switch c {
	case CmdReset:
		return "reset"
	case CmdWriteProtectDisable:
		return "wp-disable"
	case CmdNormal:
		return "normal"
	case CmdPowerDown:
		return "power-down"
	}
	if c&^dataMask == CmdWiper {
		return fmt.Sprintf("wiper(%d)", c.Data())
	}
	return fmt.Sprintf("0x%04x", uint16(c))
}

// ParseCommand decodes a command from its wire form.
func ParseCommand(b []byte) (Command, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("ad5293: command must be 2 bytes, got %d", len(b))
	}
	return Command(binary.BigEndian.Uint16(b)), nil
}
