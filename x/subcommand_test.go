/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestGetStringP(t *testing.T) {
	s := SubCommand{Conf: viper.New()}
	require.Equal(t, "fallback", s.GetStringP("file", "f", "fallback"))

	s.Conf.Set("f", "short")
	require.Equal(t, "short", s.GetStringP("file", "f", "fallback"))

	// The long name wins over the shorthand.
	s.Conf.Set("file", "long")
	require.Equal(t, "long", s.GetStringP("file", "f", "fallback"))
}

func TestGetBoolP(t *testing.T) {
	s := SubCommand{Conf: viper.New()}
	require.True(t, s.GetBoolP("stream", "s", true))

	s.Conf.Set("stream", false)
	require.False(t, s.GetBoolP("stream", "s", true))
}

func TestGetIntP(t *testing.T) {
	s := SubCommand{Conf: viper.New()}
	require.Equal(t, 10, s.GetIntP("limit", "l", 10))

	s.Conf.Set("l", 3)
	require.Equal(t, 3, s.GetIntP("limit", "l", 10))
}
