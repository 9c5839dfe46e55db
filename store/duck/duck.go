package duck

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"

	nt "courbe/entity"
)

// Duck loads a chart series into an in-memory duckdb table.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a series file; csv with label and value columns.
func (dk *Duck) Load(path string) (err error) {

	dk.filename = path

	query := fmt.Sprintf("CREATE OR REPLACE TABLE points AS SELECT * FROM read_csv_auto('%s')", path)

	_, err = dk.db.Exec(query)
	err = errors.Wrapf(err, "failed to load %s", path)
	return
}

// Points returns the loaded series in file order.
func (dk *Duck) Points() (points []nt.Point, err error) {

	rows, err := dk.db.Query("SELECT label, value FROM points")
	if err != nil {
		err = errors.Wrapf(err, "failed to query points")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var pt nt.Point
		err = rows.Scan(&pt.Label, &pt.Value)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan point")
			return
		}
		points = append(points, pt)
	}

	err = errors.Wrapf(rows.Err(), "failed to read points")
	return
}
