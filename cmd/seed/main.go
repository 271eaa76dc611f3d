// seed aplica las migraciones SQL del catálogo en orden (esquema y tipos de
// dato base) contra la base configurada por env vars.
//
// Uso: go run ./cmd/seed [ruta/migrations]
// Por defecto busca internal/infrastructure/postgres/migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tu-usuario/catalog-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/catalog-pro/pkg/config"
)

func main() {
	dir := filepath.Join("internal", "infrastructure", "postgres", "migrations")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar migraciones: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No hay archivos .sql en %s\n", dir)
		os.Exit(1)
	}
	// El prefijo numérico de cada archivo define el orden de aplicación
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", f, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			fmt.Fprintf(os.Stderr, "Aplicar %s: %v\n", f, err)
			os.Exit(1)
		}
		fmt.Printf("Aplicado %s\n", filepath.Base(f))
	}

	fmt.Println("Migraciones aplicadas correctamente")
}
