package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// sqliteSchema mirrors the archive: one table per enumeration, edge and
// stack tables for the lists, and the two usage indices. Positions keep the
// list order of the JSON document.
const sqliteSchema = `
CREATE TABLE items (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE producers (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE technologies (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE tech_edges (
    tech     TEXT NOT NULL REFERENCES technologies(name),
    position INTEGER NOT NULL,
    prereq   TEXT NOT NULL REFERENCES technologies(name),
    PRIMARY KEY (tech, position)
);

CREATE TABLE recipes (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL UNIQUE,
    time          REAL NOT NULL,
    made_in       TEXT NOT NULL REFERENCES producers(name),
    handcraftable INTEGER NOT NULL,
    unlocked_by   TEXT NOT NULL REFERENCES technologies(name)
);

CREATE TABLE recipe_stacks (
    recipe   TEXT NOT NULL REFERENCES recipes(name),
    role     TEXT NOT NULL CHECK (role IN ('ingredient', 'result')),
    position INTEGER NOT NULL,
    item     TEXT NOT NULL REFERENCES items(name),
    count    REAL NOT NULL,
    PRIMARY KEY (recipe, role, position)
);

CREATE TABLE production_methods (
    item     TEXT NOT NULL REFERENCES items(name),
    position INTEGER NOT NULL,
    recipe   TEXT NOT NULL REFERENCES recipes(name),
    PRIMARY KEY (item, position)
);

CREATE TABLE consumption_methods (
    item     TEXT NOT NULL REFERENCES items(name),
    position INTEGER NOT NULL,
    recipe   TEXT NOT NULL REFERENCES recipes(name),
    PRIMARY KEY (item, position)
);
`

// WriteSQLite writes a fresh database at path holding the whole archive.
// An existing file at path is replaced.
func WriteSQLite(ctx context.Context, path string, a *archive.Archive) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("export: replacing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("export: open %s: %w", path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("export: enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("export: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	w := &sqliteWriter{ctx: ctx, tx: tx}
	w.names("items", item.Set.Names())
	w.names("producers", producer.Set.Names())
	w.names("technologies", tech.Set.Names())
	w.techEdges(a)
	w.recipes(a)
	w.usages("production_methods", a.ProductionMethods.All())
	w.usages("consumption_methods", a.ConsumptionMethods.All())
	if w.err != nil {
		return w.err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}
	return nil
}

// sqliteWriter stops at the first failed statement and keeps its error.
type sqliteWriter struct {
	ctx context.Context
	tx  *sql.Tx
	err error
}

func (w *sqliteWriter) insert(table, query string, rows func(stmt *sql.Stmt) error) {
	if w.err != nil {
		return
	}
	stmt, err := w.tx.PrepareContext(w.ctx, query)
	if err != nil {
		w.err = fmt.Errorf("export: prepare %s insert: %w", table, err)
		return
	}
	defer stmt.Close()
	if err := rows(stmt); err != nil {
		w.err = fmt.Errorf("export: insert into %s: %w", table, err)
	}
}

func (w *sqliteWriter) names(table string, names []string) {
	w.insert(table, "INSERT INTO "+table+" (id, name) VALUES (?, ?)", func(stmt *sql.Stmt) error {
		for i, name := range names {
			if _, err := stmt.ExecContext(w.ctx, i, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *sqliteWriter) techEdges(a *archive.Archive) {
	w.insert("tech_edges", "INSERT INTO tech_edges (tech, position, prereq) VALUES (?, ?, ?)", func(stmt *sql.Stmt) error {
		for t, entry := range a.TechTree.All() {
			for i, p := range entry.Prereqs {
				if _, err := stmt.ExecContext(w.ctx, t.String(), i, p.String()); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (w *sqliteWriter) recipes(a *archive.Archive) {
	w.insert("recipes",
		"INSERT INTO recipes (id, name, time, made_in, handcraftable, unlocked_by) VALUES (?, ?, ?, ?, ?, ?)",
		func(stmt *sql.Stmt) error {
			for r, def := range a.Recipes.All() {
				if _, err := stmt.ExecContext(w.ctx, int(r), r.String(), def.Time,
					def.MadeIn.String(), def.Handcraftable, def.UnlockedBy.String()); err != nil {
					return err
				}
			}
			return nil
		})

	w.insert("recipe_stacks",
		"INSERT INTO recipe_stacks (recipe, role, position, item, count) VALUES (?, ?, ?, ?, ?)",
		func(stmt *sql.Stmt) error {
			for r, def := range a.Recipes.All() {
				sides := []struct {
					role   string
					stacks []dsp.ItemStack
				}{
					{"ingredient", def.Ingredients},
					{"result", def.Results},
				}
				for _, side := range sides {
					for i, s := range side.stacks {
						if _, err := stmt.ExecContext(w.ctx, r.String(), side.role, i, s.Item.String(), s.Count); err != nil {
							return err
						}
					}
				}
			}
			return nil
		})
}

func (w *sqliteWriter) usages(table string, index iter.Seq2[item.Item, []recipe.Recipe]) {
	w.insert(table, "INSERT INTO "+table+" (item, position, recipe) VALUES (?, ?, ?)", func(stmt *sql.Stmt) error {
		for it, recipes := range index {
			for i, r := range recipes {
				if _, err := stmt.ExecContext(w.ctx, it.String(), i, r.String()); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
