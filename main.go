package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"cpstat/internal/di"
	"cpstat/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVarP(&flags.ConfigPath, "config", "c", "", "path to config file")
	flag.BoolVarP(&flags.Update, "update", "u", false, "force a fresh fetch for every configured platform")
	flag.BoolVarP(&flags.Setup, "setup", "s", false, "re-enter all platform usernames")
	flag.StringVarP(&flags.Remove, "remove", "r", "", "wipe one store: accounts or logs")
	flag.BoolVarP(&flags.NumbersOnly, "numbers-only", "n", false, "print bare rating numbers")
	flag.StringVar(&flags.History, "history", "", "print logged ratings, optionally for one platform")
	flag.Lookup("history").NoOptDefVal = "all"
	flag.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror diagnostics to stderr")
	help := flag.BoolP("help", "h", false, "show this help")
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	flags.ShowHistory = flag.CommandLine.Changed("history")
	if flags.History == "all" {
		flags.History = ""
	}

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cpstat: %s\n", err)
		os.Exit(1)
	}
	err = app.Run()
	app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cpstat: %s\n", err)
		os.Exit(1)
	}
}
