package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/tokenswap"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".swapd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("swapd")
	fmt.Println("          Token swap ledger")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Write config.toml and a development genesis file")
	fmt.Println("apply     Execute one block of hex encoded transactions")
	fmt.Println("query     Print the results of a state query")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.swapd")`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	level := DefaultConfig().LogLevel
	if conf, err := LoadConfig(*varHome); err == nil {
		level = conf.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = InitCmd(logger, *varHome, rest)
	case "apply":
		err = ApplyCmd(logger, *varHome, rest)
	case "query":
		err = QueryCmd(logger, *varHome, rest)
	case "version":
		fmt.Println(weave.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
