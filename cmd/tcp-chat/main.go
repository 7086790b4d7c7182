package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"

	flags "github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	tcpchat "github.com/shazow/tcp-chat"
	"github.com/shazow/tcp-chat/internal/metrics"
	"github.com/shazow/tcp-chat/log"
	"github.com/shazow/tcp-chat/tcpd"
)

// Version of the binary, assigned during build.
var Version string = "dev"

// DefaultPort is used when no port argument is given.
const DefaultPort = "80"

// Options contains the flag options
type Options struct {
	Verbose   []bool `short:"v" long:"verbose" description:"Show verbose logging."`
	Version   bool   `long:"version" description:"Print version and exit."`
	BindHost  string `long:"bind-host" description:"Host to listen on, all interfaces when empty."`
	MaxConns  int64  `long:"max-conns" description:"Serve at most this many clients at once, 0 for no limit." default:"0"`
	MaxLine   int    `long:"max-line" description:"Longest command line read at once." default:"1000"`
	RateLimit int    `long:"rate-limit" description:"Limit input to this many bytes per second per client, 0 to disable." default:"0"`
	Metrics   string `long:"metrics" description:"Serve Prometheus metrics and pprof on this address."`
	LogFile   string `long:"log-file" description:"Also write logs to this file, rotated by size."`

	Args struct {
		Port string `positional-arg-name:"port" description:"Port to listen on (default 80)."`
	} `positional-args:"yes"`
}

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

func main() {
	options := Options{}
	parser := flags.NewParser(&options, flags.Default)
	parser.Usage = "[options] [port]"
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if options.Version {
		fmt.Println(Version)
		return
	}

	port := options.Args.Port
	if port == "" {
		port = DefaultPort
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		fail(1, "Invalid port: %q\n", port)
	}
	if options.MaxLine <= 0 {
		fail(1, "Invalid --max-line: %d\n", options.MaxLine)
	}

	var out io.Writer = os.Stderr
	if options.LogFile != "" {
		file := log.RotatingFile(options.LogFile)
		defer file.Close()
		out = io.MultiWriter(os.Stderr, file)
	}
	log.Init(len(options.Verbose), out)
	logger := log.Logger

	if options.Metrics != "" {
		metrics.Register(prometheus.DefaultRegisterer)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Errorf("Metrics server stopped: %v", http.ListenAndServe(options.Metrics, nil))
		}()
	}

	s, err := tcpd.Listen(net.JoinHostPort(options.BindHost, port))
	if err != nil {
		fail(4, "Failed to listen on socket: %v\n", err)
	}
	defer s.Close()
	s.MaxConns = options.MaxConns
	if options.RateLimit > 0 {
		s.RateLimit = tcpd.NewInputLimiter(options.RateLimit)
	}

	fmt.Printf("Waiting at localhost and port '%s'\n", port)

	host := tcpchat.NewHost(s)
	host.MaxLineLength = options.MaxLine

	go func() {
		if err := host.Serve(); err != nil {
			logger.Errorf("Accept loop stopped: %v", err)
		}
	}()

	// Construct interrupt handler
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	<-sig // Wait for ^C signal
	fmt.Fprintln(os.Stderr, "Interrupt signal detected, shutting down.")
}
