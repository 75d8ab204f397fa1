//----------------------------------------------------------------------
// This file is part of gallifreyan.
// Copyright (C) 2024-present the gallifreyan authors.
//
// gallifreyan is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// gallifreyan is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

// catalog initialization statement.
var catalogIni = `
create table scene (
	hash  varchar(64) primary key, -- sha256 of canonical scene JSON
	svg   text not null,           -- rendered SVG document
	hits  integer default 0        -- number of cache hits
);
`

// Catalog is a content-addressed cache of rendered scenes, avoiding a
// re-render of a scene description that was already seen.
type Catalog struct {
	inst *sql.DB
}

// OpenCatalog opens (or creates) the sqlite3-backed catalog at fname.
func OpenCatalog(fname string) (cat *Catalog, err error) {
	cat = new(Catalog)
	if cat.inst, err = sql.Open("sqlite3", fname); err == nil {
		var num int64
		row := cat.inst.QueryRow("select count(*) from scene")
		if err = row.Scan(&num); err != nil {
			_, err = cat.inst.Exec(catalogIni)
		}
	}
	return
}

// Close the catalog.
func (cat *Catalog) Close() error {
	if cat.inst == nil {
		return errors.New("catalog not opened")
	}
	return cat.inst.Close()
}

// HashScene returns the canonical cache key for a scene's JSON encoding.
func HashScene(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Lookup returns a previously stored SVG document for hash, if any.
func (cat *Catalog) Lookup(hash string) (svg string, ok bool) {
	row := cat.inst.QueryRow("select svg from scene where hash=?", hash)
	if err := row.Scan(&svg); err != nil {
		return "", false
	}
	_, _ = cat.inst.Exec("update scene set hits=hits+1 where hash=?", hash)
	return svg, true
}

// Store records the rendered SVG document under hash, replacing any
// prior entry.
func (cat *Catalog) Store(hash, svg string) error {
	_, err := cat.inst.Exec("replace into scene(hash,svg,hits) values(?,?,0)", hash, svg)
	return err
}

// Stats about the catalog.
type CatalogStats struct {
	NumScenes int64 // number of distinct scenes cached
	NumHits   int64 // total cache hits
}

// Stats returns catalog statistics.
func (cat *Catalog) Stats() (stats *CatalogStats) {
	qInt := func(q string) (v int64) {
		row := cat.inst.QueryRow("select " + q + " from scene")
		_ = row.Scan(&v)
		return
	}
	stats = new(CatalogStats)
	stats.NumScenes = qInt("count(*)")
	stats.NumHits = qInt("sum(hits)")
	return
}
