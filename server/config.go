// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// DefaultPort is the TCP port served when none is given.
const DefaultPort = 4002

// Config describes where a Server listens and what it serves.
type Config struct {
	// Address is the interface to bind. Empty means all interfaces.
	Address string
	// Port is the TCP port to bind. Zero picks an ephemeral port.
	Port int
	// Root is the directory files are served from.
	Root string
}

// DefaultConfig returns a Config serving root on all interfaces at
// DefaultPort.
func DefaultConfig(root string) Config {
	return Config{
		Port: DefaultPort,
		Root: root,
	}
}

// AddFlags registers the listen options on fs. Root is deliberately not
// a flag: files are always served from the launch directory.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Address, "address", c.Address, "interface address to listen on (default all interfaces)")
	fs.IntVar(&c.Port, "port", c.Port, "TCP port to listen on")
}

// ListenAddr is the host:port string handed to net.Listen.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}
