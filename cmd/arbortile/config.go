package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/1broseidon/arbortile/internal/config"
	"gopkg.in/yaml.v3"
)

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate()
	case "print":
		return runConfigPrint()
	case "init":
		return runConfigInit()
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func printConfigUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: arbortile config <validate|print|init>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  validate    Check the configuration file for errors")
	fmt.Fprintln(w, "  print       Print the effective configuration as YAML")
	fmt.Fprintln(w, "  init        Write a default configuration file")
}

func runConfigValidate() int {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := config.LoadFromPath(path); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %s: %s\n", verr.Path, verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		}
		return 1
	}
	fmt.Printf("Configuration valid: %s\n", path)
	return 0
}

func runConfigPrint() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}

func runConfigInit() int {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Configuration file already exists: %s\n", path)
		return 1
	}
	if err := config.Default().Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	return 0
}
