package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN (empty: in-memory repositories)
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-m int      maximum clipboard content size, bytes
//	-e int      clipboard retention period, minutes
//	-i int      eviction pass interval, seconds
//	-b int      broadcast ring-buffer capacity
//	-w int      minimum password length
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-m", "-e", "-i", "-b", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")
	retentionPeriod := fs.Int("e", int(config.RetentionPeriod.Minutes()), "clipboard retention period (in minutes)")
	evictionInterval := fs.Int("i", int(config.EvictionInterval.Seconds()), "eviction pass interval (in seconds)")

	fs.IntVar(&config.MaxContentSize, "m", config.MaxContentSize, "max clipboard content size (bytes)")
	fs.IntVar(&config.BroadcastCapacity, "b", config.BroadcastCapacity, "broadcast ring-buffer capacity")
	fs.IntVar(&config.MinPasswordLength, "w", config.MinPasswordLength, "minimum password length")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.RetentionPeriod = time.Duration(*retentionPeriod) * time.Minute
	config.EvictionInterval = time.Duration(*evictionInterval) * time.Second
}
