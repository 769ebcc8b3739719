// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-gw2-key GW2 API key
//	-kp-id KillProof.me identifier
//	-gw2-address GW2 API base URL
//	-kp-address KillProof.me base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-auto-retry schedule a retry when KillProof.me is unavailable
//	-retry-delay retry delay in minutes (1-60)
//	-refresh-on-kill only refresh once a new clear is visible
//	-final-boss-only narrow -refresh-on-kill to final wing bosses
//	-refresh-on-map-change schedule a refresh when leaving a raid map
//	-map-change-delay map-change refresh delay in minutes (1-60)
//	-baseline-on-retry re-fetch the KillProof.me baseline after a successful retry
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("kp-refresher", flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.StringVar(&cfg.App.GW2APIKey, "gw2-key", "", "GW2 API key")
	fs.StringVar(&cfg.App.KPID, "kp-id", "", "KillProof.me id")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Adapter.GW2Address, "gw2-address", "", "GW2 API base URL")
	fs.StringVar(&cfg.Adapter.KPAddress, "kp-address", "", "KillProof.me base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.BoolVar(&cfg.Refresh.AutoRetry, "auto-retry", false, "Schedule a retry when KillProof.me is unavailable")
	fs.IntVar(&cfg.Refresh.RetryDelayMinutes, "retry-delay", 0, "Retry delay in minutes (1-60)")
	fs.BoolVar(&cfg.Refresh.OnKill, "refresh-on-kill", false, "Only refresh once a new clear is visible")
	fs.BoolVar(&cfg.Refresh.OnKillOnlyBoss, "final-boss-only", false, "Only count final wing bosses as new clears")
	fs.BoolVar(&cfg.Refresh.OnMapChange, "refresh-on-map-change", false, "Schedule a refresh when leaving a raid map")
	fs.IntVar(&cfg.Refresh.MapChangeDelayMinutes, "map-change-delay", 0, "Map-change refresh delay in minutes (1-60)")
	fs.BoolVar(&cfg.Refresh.BaselineOnRetry, "baseline-on-retry", false, "Re-fetch the baseline after a successful retry")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}
	if port > 65535 {
		return errors.New("port number is out of range")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
