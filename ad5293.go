// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

// Package ad5293 provides a device driver for the AD5293 SPI digital
// potentiometer.
//
// The AD5293 has a 10-bit RDAC register, so the wiper has 1024 positions.
// The device is write-only from the perspective of this driver - the wiper
// position and mode reported by the driver are those last written.
//
// The driver is not safe for concurrent use. Operations block until the
// command words are written and any settling delays have elapsed.
package ad5293

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"
)

const (
	// MaxWiper is the full scale wiper position.
	MaxWiper = 1023

	// Steps is the number of wiper positions.
	Steps = MaxWiper + 1

	// MidScale is the wiper position the device adopts after a reset.
	MidScale = 512

	// PowerOnDelay is the time allowed for the device to settle after power on.
	PowerOnDelay = 2 * time.Millisecond

	// ResetDelay is the time allowed for the device to settle after a reset.
	ResetDelay = 1500 * time.Microsecond
)

// Bus writes bytes to a SPI device.
//
// The write is performed while the chip select of the device is asserted.
type Bus interface {
	Write(p []byte) error
}

// ChipSelect frames a transaction on a SPI bus.
type ChipSelect interface {
	Select() error
	Deselect() error
}

// Mode is the operating mode of the device.
type Mode int

const (
	// Normal indicates the device is active.
	Normal Mode = iota

	// PowerDown indicates the device is powered down.
	PowerDown
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case PowerDown:
		return "power-down"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// AD5293 drives a connected AD5293 digital potentiometer.
type AD5293 struct {
	bus Bus
	cs  ChipSelect

	wiper           int
	normalizedWiper float64
	defaultWiper    int
	mode            Mode
}

// New creates an AD5293.
//
// The device is brought out of power-down, reset, write protection is
// disabled, and the wiper is set to the initial value - 0 unless overridden
// with WithWiper.
func New(bus Bus, cs ChipSelect, options ...Option) (*AD5293, error) {
	d := AD5293{bus: bus, cs: cs}
	for _, option := range options {
		option(&d)
	}
	if err := checkRange("wiper", d.wiper); err != nil {
		return nil, err
	}
	time.Sleep(PowerOnDelay)
	if err := d.send(CmdNormal); err != nil {
		return nil, err
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	w := d.wiper
	if err := d.send(WiperCommand(w)); err != nil {
		return nil, err
	}
	d.setWiper(w)
	return &d, nil
}

// Wiper returns the wiper position last written to the device.
func (d *AD5293) Wiper() int {
	return d.wiper
}

// SetWiper sets the wiper position.
//
// The position must be in the range 0 to MaxWiper.
func (d *AD5293) SetWiper(w int) error {
	if err := checkRange("wiper", w); err != nil {
		return err
	}
	if err := d.send(WiperCommand(w)); err != nil {
		return err
	}
	d.setWiper(w)
	return nil
}

// NormalizedWiper returns the wiper position last written to the device,
// scaled to the range 0.0 to 1.0.
//
// After SetNormalizedWiper this is the value passed, not the value recomputed
// from the truncated wiper position.
func (d *AD5293) NormalizedWiper() float64 {
	return d.normalizedWiper
}

// SetNormalizedWiper sets the wiper position as a fraction of full scale.
//
// The value must be in the range 0.0 to 1.0. The position written is
// truncated, i.e. floor(v * MaxWiper).
func (d *AD5293) SetNormalizedWiper(v float64) error {
	if !(v >= 0 && v <= 1) {
		return ErrorRange{Name: "normalized wiper", Value: v, Max: 1.0}
	}
	w := int(math.Floor(v * MaxWiper))
	if err := d.send(WiperCommand(w)); err != nil {
		return err
	}
	d.wiper = w
	d.normalizedWiper = v
	return nil
}

// DefaultWiper returns the recorded power-up wiper position.
//
// The AD5293 has no non-volatile storage, so this is never written to the
// device.
func (d *AD5293) DefaultWiper() int {
	return d.defaultWiper
}

// SetDefaultWiper records the intended power-up wiper position.
func (d *AD5293) SetDefaultWiper(w int) error {
	if err := checkRange("default wiper", w); err != nil {
		return err
	}
	d.defaultWiper = w
	return nil
}

// SetDefault records the intended power-up wiper position without
// validation.
//
// Provided for compatibility with potentiometers that store a power-up
// value in EEPROM.
func (d *AD5293) SetDefault(w int) {
	d.defaultWiper = w
}

// Mode returns the mode last commanded.
func (d *AD5293) Mode() Mode {
	return d.mode
}

// Reset resets the device and disables write protection.
//
// The device returns the wiper to MidScale, but the cached Wiper and
// NormalizedWiper are not updated and remain as last written until the next
// SetWiper or SetNormalizedWiper.
func (d *AD5293) Reset() error {
	if err := d.send(CmdReset); err != nil {
		return err
	}
	time.Sleep(ResetDelay)
	if err := d.send(CmdWriteProtectDisable); err != nil {
		return err
	}
	d.mode = Normal
	return nil
}

// Shutdown places the device in power-down mode.
//
// The W terminal is connected to B and A is opened. The wiper register is
// preserved and the device remains powered down until Wake is called.
func (d *AD5293) Shutdown() error {
	if err := d.send(CmdPowerDown); err != nil {
		return err
	}
	d.mode = PowerDown
	return nil
}

// Wake returns the device to normal mode.
func (d *AD5293) Wake() error {
	if err := d.send(CmdNormal); err != nil {
		return err
	}
	d.mode = Normal
	return nil
}

func (d *AD5293) setWiper(w int) {
	d.wiper = w
	d.normalizedWiper = float64(w) / MaxWiper
}

// send writes a command word as a single chip select framed transaction.
//
// The chip is always deselected, even if the select or write fails.
func (d *AD5293) send(c Command) (err error) {
	b := c.Bytes()
	defer func() {
		err = multierr.Append(err, d.cs.Deselect())
	}()
	if err = d.cs.Select(); err != nil {
		return err
	}
	return d.bus.Write(b[:])
}

func checkRange(name string, v int) error {
	if v < 0 || v > MaxWiper {
		return ErrorRange{Name: name, Value: v, Max: MaxWiper}
	}
	return nil
}

// ErrorRange indicates a value is outside the range accepted by the device.
type ErrorRange struct {
	Name  string
	Value interface{}
	Max   interface{}
}

func (e ErrorRange) Error() string {
	return fmt.Sprintf("ad5293: %s out of range - got %v, limit is %v", e.Name, e.Value, e.Max)
}
