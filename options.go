// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

package ad5293

// Option specifies a construction option for the AD5293.
type Option func(*AD5293)

// WithWiper sets the wiper position applied when the device is created.
//
// The position is also recorded as the default wiper.
func WithWiper(w int) Option {
	return func(d *AD5293) {
		d.wiper = w
		d.defaultWiper = w
	}
}
