package handlers

import (
	"net/http"
	"strings"

	"fletapp/internal/domain"
	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/profiles
func ListProfiles(c *gin.Context) {
	repo := repositories.ProfileRepository{}
	profiles, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los perfiles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GET /api/profiles/:id
func GetProfile(c *gin.Context) {
	repo := repositories.ProfileRepository{}
	profile, err := repo.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
	DNI      *string `json:"dni"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`

	Vehicle         *string  `json:"vehicle"`
	VehicleType     *string  `json:"vehicle_type"`
	CapacityKg      *float64 `json:"capacity_kg"`
	CapacityM3      *float64 `json:"capacity_m3"`
	ServiceRadiusKm *float64 `json:"service_radius_km"`
	PhotoURL        *string  `json:"photo_url"`
	PaymentInfo     *string  `json:"payment_info"`
}

// PUT /api/profiles/:id — partial update, owner only. Absent fields keep
// their current value; role and email never change.
func UpdateProfile(c *gin.Context) {
	if c.Param("id") != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "solo podés editar tu propio perfil", nil)
		return
	}

	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ProfileRepository{}
	profile, err := repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			RespondError(c, http.StatusBadRequest, "el nombre completo no puede quedar vacío", nil)
			return
		}
		profile.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.DNI != nil {
		profile.DNI = strings.TrimSpace(*req.DNI)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		profile.Address = strings.TrimSpace(*req.Address)
	}

	if profile.Role == "driver" {
		if req.VehicleType != nil {
			vt := domain.VehicleType(strings.TrimSpace(*req.VehicleType))
			if !domain.ValidVehicleType(vt) {
				RespondError(c, http.StatusBadRequest, "el tipo de vehículo no es válido", nil)
				return
			}
			profile.VehicleType = &vt
		}
		if req.Vehicle != nil {
			profile.Vehicle = req.Vehicle
		}
		if req.CapacityKg != nil {
			profile.CapacityKg = req.CapacityKg
		}
		if req.CapacityM3 != nil {
			profile.CapacityM3 = req.CapacityM3
		}
		if req.ServiceRadiusKm != nil {
			profile.ServiceRadiusKm = req.ServiceRadiusKm
		}
		if req.PhotoURL != nil {
			profile.PhotoURL = req.PhotoURL
		}
		if req.PaymentInfo != nil {
			profile.PaymentInfo = req.PaymentInfo
		}
	}

	if err := repo.Update(profile); err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo actualizar el perfil", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "profiles", "update", "profile_id="+profile.ID)
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
