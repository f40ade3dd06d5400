// Package dotenv loads env files and applies command line overrides on top.
package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the env files (".env" when none given). Variables already set in
// the process win. Missing files are reported with ok=false, not as an error.
func Load(files ...string) (ok bool, err error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
	}

	if err := godotenv.Load(files...); err != nil {
		return false, fmt.Errorf("load env files: %w", err)
	}
	return true, nil
}

// Overrides are flags that take precedence over the environment.
type Overrides struct {
	port string
}

// RegisterFlags adds -port to flagSet. Call Apply after flagSet.Parse.
func RegisterFlags(flagSet *flag.FlagSet) *Overrides {
	o := &Overrides{}
	flagSet.StringVar(&o.port, "port", "", "Server port (overrides PORT environment variable)")
	return o
}

func (o *Overrides) Apply() error {
	if o.port != "" {
		if err := os.Setenv("PORT", o.port); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
