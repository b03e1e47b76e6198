// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line. See parseFlags for the list
// of recognised flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

// parseFlags parses args into a fresh [StructuredConfig].
//
// Flags:
//
//	-a status server address in format [host]:[port]
//	-remote remote collection server address
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-driver local store driver (sqlite3 or pgx)
//	-d local store DSN
//	-accounts comma separated accounts to sync
//	-authorities comma separated authorities to sync
//	-extras comma separated extras forwarded to every run
//	-remove-accounts comma separated accounts to delete before the pass
//	-revoke-authorities comma separated authorities to revoke before the pass
//	-cache-capacity HEAD response cache capacity
//	-concurrency number of concurrent sync runs
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("davsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var remoteAddress string
	var requestTimeout time.Duration
	var driver, dsn string
	var accounts, authorities, extras string
	var removedAccounts, revokedAuthorities string
	var cacheCapacity, concurrency int
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Status server address host:port")
	fs.StringVar(&remoteAddress, "remote", "", "Remote collection server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Local store driver (sqlite3, pgx)")
	fs.StringVar(&dsn, "d", "", "Local store DSN")
	fs.StringVar(&accounts, "accounts", "", "Comma separated accounts")
	fs.StringVar(&authorities, "authorities", "", "Comma separated authorities")
	fs.StringVar(&extras, "extras", "", "Comma separated sync extras")
	fs.StringVar(&removedAccounts, "remove-accounts", "", "Comma separated accounts to delete")
	fs.StringVar(&revokedAuthorities, "revoke-authorities", "", "Comma separated authorities to revoke")
	fs.IntVar(&cacheCapacity, "cache-capacity", 0, "HEAD response cache capacity")
	fs.IntVar(&concurrency, "concurrency", 0, "Concurrent sync runs")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Accounts:    splitList(accounts),
			Authorities: splitList(authorities),
			Extras:      splitList(extras),

			RemovedAccounts:    splitList(removedAccounts),
			RevokedAuthorities: splitList(revokedAuthorities),
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    dsn,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Cache:        Cache{Capacity: cacheCapacity},
		Workers:      Workers{Concurrency: concurrency},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping blank items.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
