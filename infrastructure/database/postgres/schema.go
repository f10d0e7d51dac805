package postgres

// Schema cria as tabelas lidas pelos repositórios. A coluna position preserva a
// ordem de cadastro, usada como desempate nos rankings
const Schema = `
CREATE TABLE IF NOT EXISTS roles (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	lastname      TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	role_id       INTEGER NOT NULL REFERENCES roles (id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS stock_items (
	id             TEXT PRIMARY KEY,
	position       INTEGER NOT NULL,
	product_name   TEXT NOT NULL,
	quantity       INTEGER NOT NULL CHECK (quantity >= 0),
	cost_price     NUMERIC(14, 2) NOT NULL,
	selling_price  NUMERIC(14, 2) NOT NULL,
	critical_stock INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS in_transit_shipments (
	id               TEXT PRIMARY KEY,
	position         INTEGER NOT NULL,
	product_name     TEXT NOT NULL,
	quantity         INTEGER NOT NULL,
	expected_arrival DATE NOT NULL,
	supplier         TEXT NOT NULL,
	cost_per_item    NUMERIC(14, 2) NOT NULL,
	status           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sales_points (
	id          TEXT PRIMARY KEY,
	granularity TEXT NOT NULL,
	position    INTEGER NOT NULL,
	period      TEXT NOT NULL,
	revenue     NUMERIC(14, 2) NOT NULL,
	profit      NUMERIC(14, 2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_points_granularity ON sales_points (granularity, position);
`

// DropSchema remove as tabelas na ordem inversa das dependências
const DropSchema = `
DROP TABLE IF EXISTS sales_points;
DROP TABLE IF EXISTS in_transit_shipments;
DROP TABLE IF EXISTS stock_items;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS roles;
`
