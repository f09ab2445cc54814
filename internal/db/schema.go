package db

import (
	"database/sql"
	"log"
)

// EnsureSchema creates the four application tables when they are missing.
// Idempotent: safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	stmts := []struct {
		table string
		ddl   string
	}{
		{"profiles", `
			CREATE TABLE IF NOT EXISTS profiles (
				id VARCHAR(36) PRIMARY KEY,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				full_name VARCHAR(255) NOT NULL,
				dni VARCHAR(32) NOT NULL,
				phone VARCHAR(32) NOT NULL,
				address VARCHAR(255) NOT NULL,
				role ENUM('customer','driver') NOT NULL,
				vehicle VARCHAR(255) NULL,
				vehicle_type VARCHAR(32) NULL,
				capacity_kg DOUBLE NULL,
				capacity_m3 DOUBLE NULL,
				service_radius_km DOUBLE NULL,
				photo_url TEXT NULL,
				payment_info VARCHAR(255) NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`},
		{"trips", `
			CREATE TABLE IF NOT EXISTS trips (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				customer_id VARCHAR(36) NOT NULL,
				driver_id VARCHAR(36) NULL,
				origin VARCHAR(255) NOT NULL,
				destination VARCHAR(255) NOT NULL,
				cargo_details TEXT NOT NULL,
				estimated_weight_kg DOUBLE NOT NULL,
				estimated_volume_m3 DOUBLE NOT NULL,
				distance_km DOUBLE NULL,
				estimated_drive_time_min INT NULL,
				estimated_load_time_min INT NULL,
				estimated_unload_time_min INT NULL,
				driver_arrival_time_min INT NULL,
				price BIGINT NULL,
				status ENUM('requested','accepted','in_transit','completed','paid') NOT NULL,
				suitable_vehicle_types VARCHAR(255) NULL,
				start_time DATETIME NULL,
				final_duration_min INT NULL,
				final_price BIGINT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				KEY idx_trips_customer (customer_id),
				KEY idx_trips_driver (driver_id),
				KEY idx_trips_status (status)
			)`},
		{"chat_messages", `
			CREATE TABLE IF NOT EXISTS chat_messages (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				trip_id BIGINT NOT NULL,
				sender_id VARCHAR(36) NOT NULL,
				content TEXT NOT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				KEY idx_chat_trip (trip_id)
			)`},
		{"reviews", `
			CREATE TABLE IF NOT EXISTS reviews (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				trip_id BIGINT NOT NULL,
				reviewer_id VARCHAR(36) NOT NULL,
				driver_id VARCHAR(36) NOT NULL,
				rating INT NOT NULL,
				comment TEXT NOT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_reviews_trip_reviewer (trip_id, reviewer_id),
				KEY idx_reviews_driver (driver_id)
			)`},
	}

	for _, s := range stmts {
		if HasTable(db, s.table) {
			continue
		}
		if _, err := db.Exec(s.ddl); err != nil {
			return err
		}
		log.Printf("[SCHEMA] tabla %s creada", s.table)
	}
	return nil
}
