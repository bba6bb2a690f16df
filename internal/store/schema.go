package store

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    menu_dir TEXT NOT NULL,
    stores INTEGER NOT NULL,
    listings INTEGER NOT NULL,
    distinct_pizzas INTEGER NOT NULL,
    ingredients INTEGER NOT NULL,
    feasible INTEGER NOT NULL,
    unseen INTEGER NOT NULL,
    coverage REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS pizzagami (
    run_id TEXT NOT NULL,
    store TEXT NOT NULL,
    name TEXT NOT NULL,
    ingredients TEXT NOT NULL,
    common_level INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS exclusive_ingredients (
    run_id TEXT NOT NULL,
    store TEXT NOT NULL,
    ingredient TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS pairings (
    run_id TEXT NOT NULL,
    prob REAL NOT NULL,
    first_ingredient TEXT NOT NULL,
    first_support INTEGER NOT NULL,
    second_ingredient TEXT NOT NULL,
    second_count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pizzagami_run ON pizzagami(run_id);
CREATE INDEX IF NOT EXISTS idx_exclusive_run ON exclusive_ingredients(run_id);
CREATE INDEX IF NOT EXISTS idx_pairings_run ON pairings(run_id);
`
