package repository

import (
	"database/sql"
	"fmt"

	"matusage/internal/db/models/postgres/public/model"
	. "matusage/internal/db/models/postgres/public/table"
	"matusage/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type ShopMasterRepository interface {
	List() ([]domain.ShopRow, error)
	Add(tx *sql.Tx, shops []model.ShopMaster) error
}

type shopMasterRepositoryHandler struct {
	Db *sql.DB
}

func NewShopMasterRepository(db *sql.DB) ShopMasterRepository {
	return shopMasterRepositoryHandler{Db: db}
}

func (h shopMasterRepositoryHandler) List() ([]domain.ShopRow, error) {
	query := ShopMaster.
		SELECT(ShopMaster.AllColumns).
		ORDER_BY(ShopMaster.Name.ASC())

	result := []model.ShopMaster{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop master: %w", err)
	}

	out := make([]domain.ShopRow, 0, len(result))
	for _, s := range result {
		out = append(out, domain.ShopRow{
			Name:       s.Name,
			CalendarID: s.CalendarID,
		})
	}

	return out, nil
}

func (h shopMasterRepositoryHandler) Add(tx *sql.Tx, shops []model.ShopMaster) error {
	if len(shops) == 0 {
		return nil
	}

	query := ShopMaster.
		INSERT(ShopMaster.AllColumns).
		MODELS(shops).
		ON_CONFLICT(ShopMaster.Name).
		DO_UPDATE(
			SET(
				ShopMaster.CalendarID.SET(ShopMaster.EXCLUDED.CalendarID),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add shop master rows: %w", err)
	}

	return nil
}
