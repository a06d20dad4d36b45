package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/givehub/backend/internal/domain"
)

func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.Store.GetSettings(c.Request.Context())
	if err != nil {
		failInternal(c, "get settings", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"settings": s})
}

// Sections are replaced wholesale; omitted sections stay untouched.
type settingsPatch struct {
	General       *domain.GeneralSettings      `json:"general"`
	Donations     *domain.DonationSettings     `json:"donations"`
	Notifications *domain.NotificationSettings `json:"notifications"`
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var in settingsPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	sections := bson.M{}
	if in.General != nil {
		sections["general"] = in.General
	}
	if in.Donations != nil {
		if in.Donations.MinimumAmount < domain.MinAmount {
			fail(c, http.StatusBadRequest, "minimum amount cannot be below 1")
			return
		}
		for _, m := range in.Donations.PaymentMethods {
			if !domain.ValidPaymentMethod(m) {
				fail(c, http.StatusBadRequest, "unknown payment method")
				return
			}
		}
		sections["donations"] = in.Donations
	}
	if in.Notifications != nil {
		sections["notifications"] = in.Notifications
	}
	if len(sections) == 0 {
		fail(c, http.StatusBadRequest, "nothing to update")
		return
	}

	s, err := h.Store.UpdateSettings(c.Request.Context(), sections)
	if err != nil {
		failInternal(c, "update settings", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"settings": s})
}
