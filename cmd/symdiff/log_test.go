package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogScan(t *testing.T) {
	defer func() {
		var f logConfig
		f.scan([]string{"--log-level=info", "--log-format=text"})
	}()
	cases := []struct {
		args   []string
		level  logLevel
		format logFormat
	}{
		{nil, "", ""},
		{[]string{"eval", "--log-level", "debug", "x"}, "debug", ""},
		{[]string{"--log-format=json", "eval"}, "", "json"},
		{[]string{"--log-level", "--log-format", "json"}, "", "json"},
		{[]string{"--log-level=warn", "--log-format", "text"}, "warn", "text"},
	}
	for _, c := range cases {
		var f logConfig
		f.scan(c.args)
		assert.Equal(t, c.level, f.Level, "%q", c.args)
		assert.Equal(t, c.format, f.Format, "%q", c.args)
	}
}
