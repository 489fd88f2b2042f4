package main

import (
	"log"
	"os"
	"tradesim/cmd"
	"tradesim/internal/logger"
)

func main() {
	lg := logger.New()
	lg.Infof("starting tradesim api, commit %s", os.Getenv("commit_hash"))

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := cmd.CloseDependencies(deps); err != nil {
			lg.Error(err)
		}
	}()

	err = deps.ApiHandler.StartApi(deps.Secrets.Simulation.ApiPort)
	if err != nil {
		lg.Fatal(err)
	}
}
