package main

// statements de criação das tabelas lidas pela API; todos idempotentes
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		email VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		descripcion TEXT,
		precio NUMERIC(12, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS albaranes (
		id SERIAL PRIMARY KEY,
		fecha DATE NOT NULL,
		descripcion VARCHAR(255),
		total NUMERIC(12, 2) NOT NULL DEFAULT 0,
		cliente_id INTEGER REFERENCES clientes(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_albaranes_fecha ON albaranes (fecha)`,
	`CREATE INDEX IF NOT EXISTS idx_albaranes_cliente ON albaranes (cliente_id)`,
	`CREATE TABLE IF NOT EXISTS lineas_albaran (
		id SERIAL PRIMARY KEY,
		albaran_id INTEGER NOT NULL REFERENCES albaranes(id) ON DELETE CASCADE,
		producto_id INTEGER NOT NULL REFERENCES productos(id),
		cantidad INTEGER NOT NULL DEFAULT 1,
		precio_unitario NUMERIC(12, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lineas_albaran_albaran ON lineas_albaran (albaran_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL DEFAULT 3,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}
