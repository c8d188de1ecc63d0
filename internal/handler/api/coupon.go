package api

import (
	"net/http"

	reqdto "homestay-booking/internal/handler/dto/request"
	"homestay-booking/internal/usecase/commands"
	"homestay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary List active coupons
// @Description List coupons currently inside their validity window
// @Tags coupons
// @Produce json
// @Success 200 {array} queries.CouponView
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// @Summary Validate coupon
// @Description Check a coupon code against an order amount
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} commands.CouponValidation
// @Failure 400 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.couponCommands.ValidateCoupon(c.Request.Context(), req.Code, req.OrderAmount, req.HomestayID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
