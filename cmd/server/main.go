package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/text-summarizer/pkg/di"

	_ "github.com/lintang-b-s/text-summarizer/docs"
)

func main() {
	server, cleanup, err := di.InitializeSummarizerService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	server.Log.Info("shutting down")
}
