package handlers

import (
	"github.com/jmoiron/sqlx"

	"tronexcars/internal/repos"
	"tronexcars/internal/services"
)

type Deps struct {
	CarHandler     *CarHandler
	AdminHandler   *AdminHandler
	ContactHandler *ContactHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	carRepo := repos.NewCarRepo(db)
	catalogSvc := services.NewCatalogService(carRepo)

	return &Deps{
		CarHandler:     &CarHandler{Catalog: catalogSvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc},
		ContactHandler: &ContactHandler{},
	}
}
