package main

import (
	"os"

	"github.com/czeal/go-jsonfilter/internal/config"
	"github.com/czeal/go-jsonfilter/internal/run"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	if exitResult := run.New(cfg).Run(); exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	return 0
}
