package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/anchore/go-logger"
	alogrus "github.com/anchore/go-logger/adapter/logrus"
	"github.com/sirupsen/logrus"
)

const (
	envLogLevel = "LOG_LEVEL"
)

func main() {
	log, err := enableLogs()
	if err != nil {
		panic(fmt.Sprintf("unable to initialize logger: %+v", err))
	}

	only := flag.String("only", "", "run a single demo by name")
	flag.Parse()

	if err := run(os.Stdout, log, *only); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, log logger.Logger, only string) error {
	var selected = demos
	if only != "" {
		d, ok := findDemo(only)
		if !ok {
			return fmt.Errorf("unknown demo %q", only)
		}
		selected = []demo{d}
	}
	for _, d := range selected {
		log.Debugf("running demo %s", d.name)
		if err := d.run(w, log.Nested("demo", d.name)); err != nil {
			return fmt.Errorf("demo %s: %w", d.name, err)
		}
	}
	return nil
}

func enableLogs() (logger.Logger, error) {
	level, ok := os.LookupEnv(envLogLevel)
	if !ok {
		level = "warn"
	}

	cfg := alogrus.Config{
		EnableConsole: true,
		Level:         logger.Level(level),
	}
	return alogrus.Use(logrus.StandardLogger(), cfg)
}
