// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package main

import (
	"github.com/warthog618/go-ad5293"
	"go.uber.org/zap"
)

// tracingBus logs each command written to the wrapped bus.
type tracingBus struct {
	bus ad5293.Bus
	log *zap.SugaredLogger
}

func (t *tracingBus) Write(p []byte) error {
	c, perr := ad5293.ParseCommand(p)
	err := t.bus.Write(p)
	if perr != nil {
		t.log.Debugw("write", "bytes", p, "err", err)
		return err
	}
	if err != nil {
		t.log.Errorw("write failed", "cmd", c.String(), "word", uint16(c), "err", err)
		return err
	}
	t.log.Debugw("write", "cmd", c.String(), "word", uint16(c))
	return nil
}
