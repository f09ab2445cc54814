package repositories

import (
	"database/sql"
	"strings"

	intconfig "fletapp/internal/config"
	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
)

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const profileColumns = `
	id,
	email,
	full_name,
	dni,
	phone,
	address,
	role,
	vehicle,
	vehicle_type,
	capacity_kg,
	capacity_m3,
	service_radius_km,
	photo_url,
	payment_info,
	created_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (models.Profile, error) {
	var (
		p                     models.Profile
		vehicle, vehicleType  sql.NullString
		capKg, capM3, radius  sql.NullFloat64
		photoURL, paymentInfo sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.DNI,
		&p.Phone,
		&p.Address,
		&p.Role,
		&vehicle,
		&vehicleType,
		&capKg,
		&capM3,
		&radius,
		&photoURL,
		&paymentInfo,
		&p.CreatedAt,
	)
	if err != nil {
		return models.Profile{}, err
	}
	if vehicle.Valid {
		v := strings.TrimSpace(vehicle.String)
		p.Vehicle = &v
	}
	if vehicleType.Valid && vehicleType.String != "" {
		vt := domain.VehicleType(vehicleType.String)
		p.VehicleType = &vt
	}
	if capKg.Valid {
		v := capKg.Float64
		p.CapacityKg = &v
	}
	if capM3.Valid {
		v := capM3.Float64
		p.CapacityM3 = &v
	}
	if radius.Valid {
		v := radius.Float64
		p.ServiceRadiusKm = &v
	}
	if photoURL.Valid {
		v := photoURL.String
		p.PhotoURL = &v
	}
	if paymentInfo.Valid {
		v := paymentInfo.String
		p.PaymentInfo = &v
	}
	return p, nil
}

// Create inserts a new profile row together with its password hash.
func (r ProfileRepository) Create(p models.Profile, passwordHash string) error {
	var vehicleType any
	if p.VehicleType != nil {
		vehicleType = string(*p.VehicleType)
	}
	_, err := r.db().Exec(`
		INSERT INTO profiles
			(id, email, password_hash, full_name, dni, phone, address, role,
			 vehicle, vehicle_type, capacity_kg, capacity_m3, service_radius_km,
			 photo_url, payment_info, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		p.ID, p.Email, passwordHash, p.FullName, p.DNI, p.Phone, p.Address, string(p.Role),
		nullStringPtr(p.Vehicle), vehicleType, nullFloatPtr(p.CapacityKg), nullFloatPtr(p.CapacityM3),
		nullFloatPtr(p.ServiceRadiusKm), nullStringPtr(p.PhotoURL), nullStringPtr(p.PaymentInfo),
	)
	return err
}

func (r ProfileRepository) GetByID(id string) (models.Profile, error) {
	row := r.db().QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = ? LIMIT 1`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return models.Profile{}, domain.NotFoundError{Resource: "perfil"}
	}
	return p, err
}

// GetByEmail also returns the stored password hash, for login.
func (r ProfileRepository) GetByEmail(email string) (models.Profile, string, error) {
	var hash string
	row := r.db().QueryRow(`
		SELECT password_hash FROM profiles WHERE email = ? LIMIT 1`, email)
	if err := row.Scan(&hash); err != nil {
		if err == sql.ErrNoRows {
			return models.Profile{}, "", domain.NotFoundError{Resource: "perfil"}
		}
		return models.Profile{}, "", err
	}
	p, err := scanProfile(r.db().QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE email = ? LIMIT 1`, email))
	if err != nil {
		return models.Profile{}, "", err
	}
	return p, hash, nil
}

func (r ProfileRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM profiles WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

func (r ProfileRepository) List() ([]models.Profile, error) {
	return r.list(`SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`)
}

func (r ProfileRepository) ListDrivers() ([]models.Profile, error) {
	return r.list(`SELECT ` + profileColumns + ` FROM profiles WHERE role = 'driver' ORDER BY created_at DESC`)
}

func (r ProfileRepository) list(query string, args ...any) ([]models.Profile, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update rewrites the owner-mutable columns. Role and email stay fixed.
func (r ProfileRepository) Update(p models.Profile) error {
	var vehicleType any
	if p.VehicleType != nil {
		vehicleType = string(*p.VehicleType)
	}
	_, err := r.db().Exec(`
		UPDATE profiles SET
			full_name = ?,
			dni = ?,
			phone = ?,
			address = ?,
			vehicle = ?,
			vehicle_type = ?,
			capacity_kg = ?,
			capacity_m3 = ?,
			service_radius_km = ?,
			photo_url = ?,
			payment_info = ?
		WHERE id = ?
	`,
		p.FullName, p.DNI, p.Phone, p.Address,
		nullStringPtr(p.Vehicle), vehicleType, nullFloatPtr(p.CapacityKg), nullFloatPtr(p.CapacityM3),
		nullFloatPtr(p.ServiceRadiusKm), nullStringPtr(p.PhotoURL), nullStringPtr(p.PaymentInfo),
		p.ID,
	)
	return err
}

func nullStringPtr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloatPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt64Ptr(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
