package main

import (
	"os"

	"github.com/chirpmux/chirpmux/server"
	"github.com/chirpmux/chirpmux/service"
	"github.com/chirpmux/chirpmux/utils"
	"github.com/chirpmux/chirpmux/utils/dotenv"
	Logger "github.com/chirpmux/chirpmux/utils/log"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("cannot connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	svc := service.New(db, utils.GetRedisClient())
	router := server.SetupRouter(svc)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	Logger.Log.Info("api server starts up")
	router.Run(addr)
}
