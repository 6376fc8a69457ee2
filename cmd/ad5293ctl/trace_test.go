// SPDX-FileCopyrightText: 2019 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: MIT

//go:build linux
// +build linux

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type bus struct {
	written [][]byte
	err     error
}

func (b *bus) Write(p []byte) error {
	b.written = append(b.written, p)
	return b.err
}

func TestTracingBus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := &bus{}
	tb := &tracingBus{bus: b, log: zap.New(core).Sugar()}

	err := tb.Write([]byte{0x06, 0x00})
	require.Nil(t, err)
	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "write", e.Message)
	assert.Equal(t, "wiper(512)", e.ContextMap()["cmd"])

	b.err = errors.New("bus not ready")
	err = tb.Write([]byte{0x20, 0x01})
	assert.Equal(t, b.err, err)
	require.Equal(t, 2, logs.Len())
	e = logs.All()[1]
	assert.Equal(t, zapcore.ErrorLevel, e.Level)
	assert.Equal(t, "power-down", e.ContextMap()["cmd"])
	assert.Len(t, b.written, 2)
}
