package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server-url food API base URL (host or full URL)
//	-user-id catalog user id used in API paths
//	-d local cache database path
//	-a stub server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "12s")
//	-refresh-interval periodic feed refresh interval, 0 disables
//	-probe-interval reachability probe interval (e.g., "5s")
//	-probe-timeout single reachability probe timeout (e.g., "2s")
//	-page-size stub server catalog page size
func ParseFlags() *StructuredConfig {
	var stubAddress NetAddress
	var baseURL string
	var userID int64
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var probeInterval time.Duration
	var probeTimeout time.Duration
	var pageSize int

	flag.StringVar(&baseURL, "server-url", "", "Food API base URL")
	flag.Int64Var(&userID, "user-id", 0, "Catalog user id")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.Var(&stubAddress, "a", "Stub server net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 12s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Periodic refresh interval, 0 disables")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Reachability probe interval (e.g., 5s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Reachability probe timeout (e.g., 2s)")
	flag.IntVar(&pageSize, "page-size", 0, "Stub server page size")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID: userID,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Connectivity: Connectivity{
			ProbeInterval: probeInterval,
			ProbeTimeout:  probeTimeout,
		},
		StubServer: StubServer{
			HTTPAddress: stubAddress.String(),
			PageSize:    pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
