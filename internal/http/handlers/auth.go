package handlers

import (
	"net/http"
	"strings"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	DNI      string          `json:"dni"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Role     models.UserRole `json:"role"`

	// Driver-only block, ignored for customers.
	Vehicle         *string  `json:"vehicle"`
	VehicleType     *string  `json:"vehicle_type"`
	CapacityKg      *float64 `json:"capacity_kg"`
	CapacityM3      *float64 `json:"capacity_m3"`
	ServiceRadiusKm *float64 `json:"service_radius_km"`
	PhotoURL        *string  `json:"photo_url"`
	PaymentInfo     *string  `json:"payment_info"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		RespondError(c, http.StatusBadRequest, "el email no es válido", nil)
		return
	}
	if len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "la contraseña debe tener al menos 6 caracteres", nil)
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		RespondError(c, http.StatusBadRequest, "el nombre completo es obligatorio", nil)
		return
	}
	if !models.ValidRole(req.Role) {
		RespondError(c, http.StatusBadRequest, "el rol debe ser customer o driver", nil)
		return
	}

	repo := repositories.ProfileRepository{}
	exists, err := repo.EmailExists(req.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo verificar el email", err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "el email ya está registrado", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo procesar la contraseña", err)
		return
	}

	profile := models.Profile{
		ID:       uuid.NewString(),
		Email:    req.Email,
		FullName: strings.TrimSpace(req.FullName),
		DNI:      strings.TrimSpace(req.DNI),
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
		Role:     req.Role,
	}
	if req.Role == models.RoleDriver {
		if req.VehicleType != nil {
			vt := domain.VehicleType(strings.TrimSpace(*req.VehicleType))
			if !domain.ValidVehicleType(vt) {
				RespondError(c, http.StatusBadRequest, "el tipo de vehículo no es válido", nil)
				return
			}
			profile.VehicleType = &vt
		}
		profile.Vehicle = req.Vehicle
		profile.CapacityKg = req.CapacityKg
		profile.CapacityM3 = req.CapacityM3
		profile.ServiceRadiusKm = req.ServiceRadiusKm
		profile.PhotoURL = req.PhotoURL
		profile.PaymentInfo = req.PaymentInfo
	}

	if err := repo.Create(profile, string(hash)); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el perfil", err)
		return
	}

	token, err := signToken(profile)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar la sesión", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "profile_id="+profile.ID+" role="+string(profile.Role))
	c.JSON(http.StatusCreated, gin.H{
		"message": "registro exitoso",
		"token":   token,
		"profile": profile,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ProfileRepository{}
	profile, passwordHash, err := repo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "email o contraseña incorrectos", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "no se pudo consultar el perfil", err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "email o contraseña incorrectos", nil)
		return
	}

	token, err := signToken(profile)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar la sesión", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "profile_id="+profile.ID)
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"profile": profile,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	repo := repositories.ProfileRepository{}
	profile, err := repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func signToken(p models.Profile) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": p.ID,
		"role":    string(p.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(appEnv.JWTSecret))
}
