package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/shazow/tcp-chat/client"
	"github.com/shazow/tcp-chat/log"
	"github.com/shazow/tcp-chat/tcpd"
)

// Options contains the flag options
type Options struct {
	Verbose []bool `short:"v" long:"verbose" description:"Show verbose logging."`
	Address string `short:"a" long:"address" description:"Address of the chat server." required:"true"`
	Port    int    `short:"p" long:"port" description:"Port of the chat server." default:"9000"`
	User    string `short:"u" long:"user" description:"Username to join as." required:"true"`
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	options := Options{}
	parser := flags.NewParser(&options, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	log.Init(len(options.Verbose), os.Stderr)

	conn, err := tcpd.Dial(options.Address, options.Port)
	if err != nil {
		fail(2, "Failed to connect: %v\n", err)
	}
	defer conn.Close()

	session := client.NewSession(conn)
	session.ShowPrompt = term.IsTerminal(int(os.Stdin.Fd()))
	if err := session.Join(options.User); err != nil {
		fail(3, "Failed to join: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = session.Run(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Logger.Errorf("Session ended: %v", err)
		stop()
		os.Exit(4)
	}
}
