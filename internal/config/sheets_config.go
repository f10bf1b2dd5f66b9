package config

type SheetsConfig interface {
	GetSheetID() string
	GetSheetsAPIKey() string
	GetSheetName() string
	GetSheetsBaseURL() string
}

type Sheets struct {
	SheetID   string `env:"GOOGLE_SHEET_ID"`
	APIKey    string `env:"GOOGLE_API_KEY"`
	SheetName string `env:"SHEET_NAME" envDefault:"Info Employé"`
	BaseURL   string `env:"SHEETS_BASE_URL" envDefault:"https://sheets.googleapis.com"`
}

var _ SheetsConfig = Sheets{}

func (s Sheets) GetSheetID() string {
	return s.SheetID
}

func (s Sheets) GetSheetsAPIKey() string {
	return s.APIKey
}

func (s Sheets) GetSheetName() string {
	return s.SheetName
}

func (s Sheets) GetSheetsBaseURL() string {
	return s.BaseURL
}
