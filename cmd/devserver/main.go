package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/fintechdocs/creditapp/internal/devserver"
)

func main() {

	addr := flag.String("a", ":8080", "address to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := devserver.New(*addr, logger)

	if err := srv.Run(); err != nil {
		log.Fatalf("%v", err)
	}

}
