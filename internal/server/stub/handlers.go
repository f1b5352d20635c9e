package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/models"
)

type carsResponse struct {
	Success bool         `json:"success"`
	Cars    []models.Car `json:"cars,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Handler serves the four panel endpoints over a Store.
type Handler struct {
	store *Store
	log   logging.Logger
}

func NewHandler(store *Store, log logging.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// GetUserCars handles GET /api/get-user-cars?email=...
func (h *Handler) GetUserCars(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, carsResponse{Success: false, Error: "กรุณาระบุอีเมล"})
		return
	}

	cars, err := h.store.CarsByOwner(email)
	if err != nil {
		c.JSON(http.StatusOK, carsResponse{Success: false, Error: "ไม่พบบัญชีผู้ใช้"})
		return
	}

	h.log.Debug(c.Request.Context(), "listed cars", "owner", email, "count", len(cars))
	c.JSON(http.StatusOK, carsResponse{Success: true, Cars: cars})
}

type deleteCarRequest struct {
	UserEmail string `json:"userEmail" binding:"required"`
}

// DeleteCar handles DELETE /api/delete-car/:id with body {userEmail}.
func (h *Handler) DeleteCar(c *gin.Context) {
	var req deleteCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, statusResponse{Success: false, Error: "กรุณาระบุอีเมลเจ้าของรถ"})
		return
	}

	id := c.Param("id")
	if err := h.store.DeleteCar(id, req.UserEmail); err != nil {
		h.log.Warn(c.Request.Context(), "delete rejected", "id", id, "owner", req.UserEmail, "error", err)
		switch {
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "ไม่มีสิทธิ์ลบรถคันนี้"})
		case errors.Is(err, ErrCarNotFound):
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "ไม่พบรถที่ต้องการลบ"})
		default:
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "ไม่พบบัญชีผู้ใช้"})
		}
		return
	}

	h.log.Info(c.Request.Context(), "car deleted", "id", id, "owner", req.UserEmail)
	c.JSON(http.StatusOK, statusResponse{Success: true})
}

type verifyPasswordRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyPassword handles POST /api/verify-password. A wrong password is a
// regular success=false answer, not an error payload.
func (h *Handler) VerifyPassword(c *gin.Context) {
	var req verifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, statusResponse{Success: false, Error: "กรุณาระบุอีเมลและรหัสผ่าน"})
		return
	}

	c.JSON(http.StatusOK, statusResponse{Success: h.store.VerifyPassword(req.Email, req.Password)})
}

type changePasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ChangePassword handles POST /api/change-password.
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, statusResponse{Success: false, Error: "ข้อมูลไม่ครบถ้วน"})
		return
	}

	if err := h.store.ChangePassword(req.Email, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "รหัสผ่านปัจจุบันไม่ถูกต้อง"})
		case errors.Is(err, ErrPasswordTooShort):
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "รหัสผ่านใหม่ต้องมีอย่างน้อย 6 ตัวอักษร"})
		default:
			c.JSON(http.StatusOK, statusResponse{Success: false, Error: "ไม่พบบัญชีผู้ใช้"})
		}
		return
	}

	h.log.Info(c.Request.Context(), "password changed", "email", req.Email)
	c.JSON(http.StatusOK, statusResponse{Success: true})
}
