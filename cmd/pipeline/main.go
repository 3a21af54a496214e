// Command pipeline ingests RSS news into finnews and analyses pending items.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	"finnews/internal/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&ingestCmd{}, "")
	commander.Register(&analyzeCmd{}, "")

	flag.Parse()
	logger.Init(os.Getenv("ENV"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	logger.Sync()
	os.Exit(int(status))
}
