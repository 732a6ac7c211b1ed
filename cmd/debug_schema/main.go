// Command debug_schema prints the columns and constraints of the portfolio tables.
package main

import (
	"fmt"
	"log"

	"folio/internal/config"
	"folio/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{SkipSchema: true})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = database.Close() }()

	migrator := db.Migrator()
	for _, table := range database.PortfolioTables() {
		if !migrator.HasTable(table) {
			fmt.Printf("%s: missing\n", table)
			continue
		}

		columns, err := migrator.ColumnTypes(table)
		if err != nil {
			log.Fatalf("columns of %s: %v", table, err)
		}
		fmt.Printf("Columns in %s:\n", table)
		for _, c := range columns {
			nullable, _ := c.Nullable()
			fmt.Printf(" - %s: %s nullable=%t\n", c.Name(), c.DatabaseTypeName(), nullable)
		}

		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("Rows in %s: %d\n", table, count)
	}

	if db.Dialector.Name() != "postgres" {
		return
	}

	var constraints []struct {
		Relname string `gorm:"column:relname"`
		Conname string `gorm:"column:conname"`
		Def     string `gorm:"column:def"`
	}
	db.Raw(`SELECT r.relname, c.conname, pg_get_constraintdef(c.oid) AS def
		FROM pg_constraint c
		JOIN pg_class r ON c.conrelid = r.oid
		JOIN pg_namespace n ON n.oid = r.relnamespace
		WHERE n.nspname = 'public' AND r.relname IN ?
		ORDER BY r.relname, c.conname`, database.PortfolioTables()).Scan(&constraints)

	fmt.Println("Constraints:")
	for _, r := range constraints {
		fmt.Printf(" - %s on %s: %s\n", r.Conname, r.Relname, r.Def)
	}
}
