package main

import (
	"github.com/gin-gonic/gin"
	"github.com/tonniewhood/stegostrips/internal/api"
	"github.com/tonniewhood/stegostrips/internal/config"
	"github.com/tonniewhood/stegostrips/internal/dao"
	"github.com/tonniewhood/stegostrips/internal/db"
	"github.com/tonniewhood/stegostrips/internal/solve"
	"github.com/tonniewhood/stegostrips/pkg/plangen"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	dbClient, err := db.NewDbClient(cfg)
	if err != nil {
		panic(err)
	}
	defer dbClient.Close()

	planRepo := dao.NewPlanRepository(dbClient)
	catalog := plangen.NewCatalog(cfg.Planner.PredefinedDir)
	service := &solve.Service{
		Compiler: &plangen.Compiler{TemplatePath: cfg.Planner.TemplatePath},
		Invoker:  &plangen.Invoker{Path: cfg.Planner.Path},
		Catalog:  catalog,
	}
	workerFactory := solve.NewWorkerFactory(service, planRepo)
	solveApi := api.NewSolveApi(planRepo, workerFactory, catalog)

	r := gin.Default()
	r.GET("/endgames", solveApi.Endgames)
	r.POST("/solve/fen", solveApi.SolveFEN)
	r.POST("/solve/predefined/:name", solveApi.SolvePredefined)
	r.GET("/job/:job_id", solveApi.GetJobStatus)
	r.GET("/plans", solveApi.PlansForFEN)
	r.GET("/plans/recent", solveApi.RecentPlans)

	if err := r.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		panic(err)
	}
}
