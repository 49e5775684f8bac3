package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"matusage/internal/db/models/postgres/public/model"
	"matusage/internal/repository"
	"matusage/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	materialsFile string
	shopsFile     string
	calendarFile  string
	forecastFile  string
	actualsFile   string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load master data, calendars, forecasts and actuals from CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		secrets, err := util.LoadSecrets()
		if err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer dbConn.Close()

		tx, err := dbConn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin tx: %w", err)
		}
		defer tx.Rollback()

		if err := seedAll(tx); err != nil {
			return err
		}

		return tx.Commit()
	},
}

func init() {
	rootCmd.Flags().StringVar(&materialsFile, "materials", "", "material master csv")
	rootCmd.Flags().StringVar(&shopsFile, "shops", "", "shop master csv")
	rootCmd.Flags().StringVar(&calendarFile, "calendar", "", "work calendar csv")
	rootCmd.Flags().StringVar(&forecastFile, "forecast", "", "forecast lines csv")
	rootCmd.Flags().StringVar(&actualsFile, "actuals", "", "actual transactions csv")
}

func seedAll(tx *sql.Tx) error {
	if materialsFile != "" {
		if err := seedMaterials(tx, materialsFile); err != nil {
			return fmt.Errorf("failed to seed materials: %w", err)
		}
	}
	if shopsFile != "" {
		if err := seedShops(tx, shopsFile); err != nil {
			return fmt.Errorf("failed to seed shops: %w", err)
		}
	}
	if calendarFile != "" {
		if err := seedCalendar(tx, calendarFile); err != nil {
			return fmt.Errorf("failed to seed calendar: %w", err)
		}
	}
	if forecastFile != "" {
		if err := seedForecast(tx, forecastFile); err != nil {
			return fmt.Errorf("failed to seed forecast: %w", err)
		}
	}
	if actualsFile != "" {
		if err := seedActuals(tx, actualsFile); err != nil {
			return fmt.Errorf("failed to seed actuals: %w", err)
		}
	}
	return nil
}

func seedMaterials(tx *sql.Tx, path string) error {
	type Row struct {
		ID              string  `csv:"id"`
		Price           float64 `csv:"price"`
		QuantityPerUnit float64 `csv:"quantity_per_unit"`
		PackSize        int64   `csv:"pack_size"`
		Category        string  `csv:"category"`
	}
	rows := []Row{}
	if err := readCsv(path, &rows); err != nil {
		return err
	}

	models := []model.MaterialMaster{}
	for _, row := range rows {
		m := model.MaterialMaster{
			ID:              row.ID,
			Price:           util.DecimalPointer(decimal.NewFromFloat(row.Price)),
			QuantityPerUnit: util.DecimalPointer(decimal.NewFromFloat(row.QuantityPerUnit)),
			PackSize:        &row.PackSize,
		}
		if row.Category != "" {
			m.Category = util.StringPointer(row.Category)
		}
		models = append(models, m)
	}

	return repository.NewMaterialMasterRepository(nil).Add(tx, models)
}

func seedShops(tx *sql.Tx, path string) error {
	type Row struct {
		Name       string `csv:"name"`
		CalendarID int32  `csv:"calendar_id"`
	}
	rows := []Row{}
	if err := readCsv(path, &rows); err != nil {
		return err
	}

	models := []model.ShopMaster{}
	for _, row := range rows {
		models = append(models, model.ShopMaster{
			Name:       row.Name,
			CalendarID: &row.CalendarID,
		})
	}

	return repository.NewShopMasterRepository(nil).Add(tx, models)
}

func seedCalendar(tx *sql.Tx, path string) error {
	type Row struct {
		CalendarID  int32   `csv:"calendar_id"`
		Date        string  `csv:"date"`
		WorkingTime float64 `csv:"working_time"`
		OverTime    float64 `csv:"over_time"`
	}
	rows := []Row{}
	if err := readCsv(path, &rows); err != nil {
		return err
	}

	models := []model.WorkCalendar{}
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return err
		}
		models = append(models, model.WorkCalendar{
			CalendarID:  row.CalendarID,
			Date:        date,
			WorkingTime: util.DecimalPointer(decimal.NewFromFloat(row.WorkingTime)),
			OverTime:    util.DecimalPointer(decimal.NewFromFloat(row.OverTime)),
		})
	}

	return repository.NewWorkCalendarRepository(nil).Add(tx, models)
}

func seedForecast(tx *sql.Tx, path string) error {
	type Row struct {
		MaterialID string  `csv:"material_id"`
		Shop       string  `csv:"shop"`
		Quantity   float64 `csv:"quantity"`
		Period     string  `csv:"period"`
	}
	rows := []Row{}
	if err := readCsv(path, &rows); err != nil {
		return err
	}

	models := []model.ForecastLine{}
	for _, row := range rows {
		period, err := time.Parse("2006-01", row.Period)
		if err != nil {
			return err
		}
		line := model.ForecastLine{
			MaterialID:  row.MaterialID,
			Quantity:    util.DecimalPointer(decimal.NewFromFloat(row.Quantity)),
			PeriodMonth: period,
		}
		if row.Shop != "" {
			line.Shop = util.StringPointer(row.Shop)
		}
		models = append(models, line)
	}

	return repository.NewForecastLineRepository(nil).Add(tx, models)
}

func seedActuals(tx *sql.Tx, path string) error {
	type Row struct {
		MaterialID   string  `csv:"material_id"`
		Department   string  `csv:"department"`
		Quantity     float64 `csv:"quantity"`
		PostingDate  string  `csv:"posting_date"`
		DocumentDate string  `csv:"document_date"`
	}
	rows := []Row{}
	if err := readCsv(path, &rows); err != nil {
		return err
	}

	models := []model.ActualTransaction{}
	for _, row := range rows {
		postingDate, err := time.Parse(time.DateOnly, row.PostingDate)
		if err != nil {
			return err
		}
		txn := model.ActualTransaction{
			MaterialID:  row.MaterialID,
			Quantity:    util.DecimalPointer(decimal.NewFromFloat(row.Quantity)),
			PostingDate: postingDate,
		}
		if row.Department != "" {
			txn.Department = util.StringPointer(row.Department)
		}
		if row.DocumentDate != "" {
			documentDate, err := time.Parse(time.DateOnly, row.DocumentDate)
			if err != nil {
				return err
			}
			txn.DocumentDate = &documentDate
		}
		models = append(models, txn)
	}

	return repository.NewActualTransactionRepository(nil).Add(tx, models)
}

func readCsv(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.UnmarshalFile(f, out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
