package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"minijudge/internal/cli"
)

const (
	defaultBaseURL = "http://127.0.0.1:8080"
	defaultTimeout = 30 * time.Second
)

func main() {
	baseURL := flag.String("base", defaultBaseURL, "Judge service base URL")
	timeout := flag.Duration("timeout", defaultTimeout, "HTTP timeout (e.g. 10s)")
	pretty := flag.Bool("pretty", true, "Pretty print JSON responses")
	flag.Parse()

	client := cli.NewClient(*baseURL, *timeout)
	session := cli.NewSession(client, *pretty)
	if err := session.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
