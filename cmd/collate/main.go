package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const envPrefix = "COLLATE"

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05",
	})
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("collate failed")
	}
}

// SetFlagsFromEnv parses all registered flags in the given flagset,
// and if they are not already set it attempts to set their values from
// environment variables. Environment variables take the name of the flag but
// are UPPERCASE, and any dashes are replaced by underscores. Environment
// variables additionally are prefixed by the given string followed by
// and underscore. For example, if prefix=PREFIX: some-flag => PREFIX_SOME_FLAG
func SetFlagsFromEnv(fs *pflag.FlagSet, prefix string) (err error) {
	alreadySet := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		alreadySet[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		if !alreadySet[f.Name] {
			key := prefix + "_" + strings.ToUpper(strings.Replace(f.Name, "-", "_", -1))
			val := os.Getenv(key)
			if val != "" {
				if serr := fs.Set(f.Name, val); serr != nil {
					err = serr
				}
			}
		}
	})
	return err
}

func setupLogger(logLevelStr string) (log.FieldLogger, error) {
	logger := log.WithFields(log.Fields{
		"app": "collate",
	})
	logLevel, err := log.ParseLevel(logLevelStr)
	if err != nil {
		return nil, err
	}
	logger.Logger.Level = logLevel
	logger.Debugf("setting log level to %s", logLevel.String())
	return logger, nil
}
