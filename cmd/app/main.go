package main

import (
	"roomescape/config"
	"roomescape/di"
	"roomescape/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
