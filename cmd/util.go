package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"matusage/api"
	"matusage/internal/app"
	"matusage/internal/repository"
	"matusage/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	periodViewHandler := app.PeriodViewHandler{
		MaterialMasterRepository:    repository.NewMaterialMasterRepository(dbConn),
		ShopMasterRepository:        repository.NewShopMasterRepository(dbConn),
		WorkCalendarRepository:      repository.NewWorkCalendarRepository(dbConn),
		ForecastLineRepository:      repository.NewForecastLineRepository(dbConn),
		ActualTransactionRepository: repository.NewActualTransactionRepository(dbConn),
	}

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		PeriodViewHandler:    periodViewHandler,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
