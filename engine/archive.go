// Copyright 2024 Institute for Language Sciences,
//                Faculty of Humanities, Utrecht University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ResultArchive stores finished extraction results as raw JSON so
// clients can re-fetch them later without re-running the job.
//
// Expected table:
//
//	CREATE TABLE pextract_result_archive (
//	    id VARCHAR(128) PRIMARY KEY,
//	    data LONGTEXT NOT NULL,
//	    created TIMESTAMP NOT NULL,
//	    num_access INT NOT NULL DEFAULT 0
//	);
type ResultArchive struct {
	db  *sql.DB
	ctx context.Context
}

func NewResultArchive(ctx context.Context, db *sql.DB) *ResultArchive {
	return &ResultArchive{db: db, ctx: ctx}
}

func (ra *ResultArchive) Insert(resultID string, data []byte) error {
	_, err := ra.db.ExecContext(
		ra.ctx,
		"INSERT INTO pextract_result_archive (id, data, created) VALUES (?, ?, ?)",
		resultID, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive result %s: %w", resultID, err)
	}
	return nil
}

// Get returns the archived raw JSON of a result or nil if there is
// no such record.
func (ra *ResultArchive) Get(resultID string) ([]byte, error) {
	row := ra.db.QueryRowContext(
		ra.ctx,
		"SELECT data FROM pextract_result_archive WHERE id = ?",
		resultID,
	)
	var data string
	if err := row.Scan(&data); err == sql.ErrNoRows {
		return nil, nil

	} else if err != nil {
		return nil, fmt.Errorf("failed to load archived result %s: %w", resultID, err)
	}
	_, err := ra.db.ExecContext(
		ra.ctx,
		"UPDATE pextract_result_archive SET num_access = num_access + 1 WHERE id = ?",
		resultID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update access info of result %s: %w", resultID, err)
	}
	return []byte(data), nil
}
