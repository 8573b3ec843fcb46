package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/accountd/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-t int      session token validity, hours
//	-w int      bcrypt cost
//	-f string   seed YAML file path
//	-o string   comma-separated CORS allowed origins
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - The token validity flag is accepted as an integer in hours and then
//     converted to a time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-w", "-f", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity duration (in hours)")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.SeedPath, "f", config.SeedPath, "seed file path")

	origins := fs.String("o", "", "comma-separated CORS allowed origins")

	_ = fs.Parse(args)

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
	if *origins != "" {
		config.CORSAllowedOrigins = strings.Split(*origins, ",")
	}
}
