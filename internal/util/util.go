package util

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func StringPointer(s string) *string {
	return &s
}

type Secrets struct {
	Db DbSecrets `json:"db"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// LoadSecrets reads secrets.json when present, otherwise falls back to
// env vars (a .env file is loaded first if one exists).
func LoadSecrets() (*Secrets, error) {
	_ = godotenv.Load()

	secretsFile := "secrets.json"
	if env := os.Getenv("MATUSAGE_ENV"); env != "" {
		candidate := fmt.Sprintf("secrets-%s.json", env)
		if _, err := os.Stat(candidate); err == nil {
			secretsFile = candidate
		}
	}

	if f, err := os.ReadFile(secretsFile); err == nil {
		secrets := Secrets{}
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
		return &secrets, nil
	}

	secrets := &Secrets{
		Db: DbSecrets{
			Host:      os.Getenv("DB_HOST"),
			User:      os.Getenv("DB_USER"),
			Port:      os.Getenv("DB_PORT"),
			Password:  os.Getenv("DB_PASSWORD"),
			Database:  os.Getenv("DB_NAME"),
			EnableSsl: os.Getenv("DB_SSL") == "true",
		},
	}
	if secrets.Db.Host == "" {
		return nil, fmt.Errorf("no secrets file found and DB_HOST is unset")
	}

	return secrets, nil
}
