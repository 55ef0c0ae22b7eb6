package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// mode: "ro" para lecturas (no recrea un archivo borrado),
// "rwc" para la inicialización.
func open(ctx context.Context, path, mode string) (*sql.DB, error) {
	q := url.Values{}
	q.Set("mode", mode)
	q.Add("_pragma", "busy_timeout(5000)")
	db, err := sql.Open(driverName, dsnFor(path, q))
	if err != nil {
		return nil, err
	}
	// Una sola conexión por archivo.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// dsnFor arma la URI "file:" con el path escapado: sqlite decodifica la URI,
// y tiene que abrir exactamente el archivo que os.Stat revisó.
func dsnFor(path string, q url.Values) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?" + q.Encode()
}
