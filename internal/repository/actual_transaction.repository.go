package repository

import (
	"database/sql"
	"fmt"
	"time"

	"matusage/internal/db/models/postgres/public/model"
	. "matusage/internal/db/models/postgres/public/table"
	"matusage/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type ActualTransactionRepository interface {
	// List returns transactions posted in the inclusive range
	// [start, end].
	List(start, end time.Time) ([]domain.ActualTransaction, error)
	Add(tx *sql.Tx, transactions []model.ActualTransaction) error
}

type actualTransactionRepositoryHandler struct {
	Db *sql.DB
}

func NewActualTransactionRepository(db *sql.DB) ActualTransactionRepository {
	return actualTransactionRepositoryHandler{Db: db}
}

func (h actualTransactionRepositoryHandler) List(start, end time.Time) ([]domain.ActualTransaction, error) {
	query := ActualTransaction.
		SELECT(ActualTransaction.AllColumns).
		WHERE(
			ActualTransaction.PostingDate.BETWEEN(DateT(start), DateT(end)),
		).
		ORDER_BY(ActualTransaction.PostingDate.ASC())

	result := []model.ActualTransaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list actual transactions: %w", err)
	}

	out := make([]domain.ActualTransaction, 0, len(result))
	for _, txn := range result {
		quantity := decimal.Zero
		if txn.Quantity != nil {
			quantity = *txn.Quantity
		}
		out = append(out, domain.ActualTransaction{
			MaterialID:   txn.MaterialID,
			Department:   txn.Department,
			Quantity:     quantity,
			PostingDate:  txn.PostingDate,
			DocumentDate: txn.DocumentDate,
		})
	}

	return out, nil
}

func (h actualTransactionRepositoryHandler) Add(tx *sql.Tx, transactions []model.ActualTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	query := ActualTransaction.
		INSERT(ActualTransaction.MutableColumns).
		MODELS(transactions)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add actual transactions: %w", err)
	}

	return nil
}
