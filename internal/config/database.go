package config

type Database struct {
	Path           string
	Name           string
	CompaniesTable string
}

func newDatabase() *Database {
	return &Database{
		Path:           getEnv("DB_PATH", "data/companies.db"),
		Name:           getEnv("DB_NAME", "Supply_Chain_Network_Mar2025"),
		CompaniesTable: getEnv("COMPANIES_TABLE", "companies"),
	}
}
