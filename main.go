package main

import (
	"os"

	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
