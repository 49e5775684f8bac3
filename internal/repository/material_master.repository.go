package repository

import (
	"database/sql"
	"fmt"

	"matusage/internal/db/models/postgres/public/model"
	. "matusage/internal/db/models/postgres/public/table"
	"matusage/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type MaterialMasterRepository interface {
	List() ([]domain.MaterialRow, error)
	Add(tx *sql.Tx, materials []model.MaterialMaster) error
}

type materialMasterRepositoryHandler struct {
	Db *sql.DB
}

func NewMaterialMasterRepository(db *sql.DB) MaterialMasterRepository {
	return materialMasterRepositoryHandler{Db: db}
}

func (h materialMasterRepositoryHandler) List() ([]domain.MaterialRow, error) {
	query := MaterialMaster.
		SELECT(MaterialMaster.AllColumns).
		ORDER_BY(MaterialMaster.ID.ASC())

	result := []model.MaterialMaster{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list material master: %w", err)
	}

	out := make([]domain.MaterialRow, 0, len(result))
	for _, m := range result {
		out = append(out, domain.MaterialRow{
			ID:              m.ID,
			Price:           m.Price,
			QuantityPerUnit: m.QuantityPerUnit,
			PackSize:        m.PackSize,
			Category:        m.Category,
		})
	}

	return out, nil
}

func (h materialMasterRepositoryHandler) Add(tx *sql.Tx, materials []model.MaterialMaster) error {
	if len(materials) == 0 {
		return nil
	}

	query := MaterialMaster.
		INSERT(MaterialMaster.AllColumns).
		MODELS(materials).
		ON_CONFLICT(MaterialMaster.ID).
		DO_UPDATE(
			SET(
				MaterialMaster.Price.SET(MaterialMaster.EXCLUDED.Price),
				MaterialMaster.QuantityPerUnit.SET(MaterialMaster.EXCLUDED.QuantityPerUnit),
				MaterialMaster.PackSize.SET(MaterialMaster.EXCLUDED.PackSize),
				MaterialMaster.Category.SET(MaterialMaster.EXCLUDED.Category),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add material master rows: %w", err)
	}

	return nil
}
