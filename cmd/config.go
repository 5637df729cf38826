package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// AdminIDs is a comma separated list of actor ids with administrative
	// access.
	AdminIDs string
}
