package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/metrics"
	"github.com/givehub/backend/internal/repo"
)

type donationReq struct {
	OrganizationID string  `json:"organizationId"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	PaymentMethod  string  `json:"paymentMethod"`
}

// CreateDonation godoc
// @Summary Create donation
// @Tags donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body donationReq true "donation"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/donations [post]
//
// The request carries no status field: every donation starts pending no
// matter what the client sends.
func (h *Handler) CreateDonation(c *gin.Context) {
	var in donationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	orgID, err := primitive.ObjectIDFromHex(in.OrganizationID)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid organization id")
		return
	}
	if in.Type == "" {
		in.Type = domain.DonationMonetary
	}
	if !domain.ValidDonationType(in.Type) {
		fail(c, http.StatusBadRequest, "donation type must be monetary or in_kind")
		return
	}
	switch in.Type {
	case domain.DonationMonetary:
		if in.Amount < domain.MinAmount {
			fail(c, http.StatusBadRequest, fmt.Sprintf("amount must be at least %d", domain.MinAmount))
			return
		}
		if !domain.ValidPaymentMethod(in.PaymentMethod) {
			fail(c, http.StatusBadRequest, "unknown payment method")
			return
		}
	case domain.DonationInKind:
		if strings.TrimSpace(in.Description) == "" {
			fail(c, http.StatusBadRequest, "in-kind donations require a description")
			return
		}
		// an in-kind donation carries no monetary fields, whatever the client sent
		in.Amount = 0
		in.PaymentMethod = ""
	}

	org, err := h.Store.FindOrganizationByID(c.Request.Context(), orgID)
	if err != nil {
		failInternal(c, "find organization", err)
		return
	}
	if org == nil {
		fail(c, http.StatusNotFound, "organization not found")
		return
	}

	p := currentPrincipal(c)
	d := &domain.Donation{
		DonorID:        p.ID,
		OrganizationID: orgID,
		Type:           in.Type,
		Amount:         in.Amount,
		Description:    strings.TrimSpace(in.Description),
		PaymentMethod:  in.PaymentMethod,
		Status:         domain.DonationPending,
	}
	if err := h.Store.CreateDonation(c.Request.Context(), d); err != nil {
		failInternal(c, "create donation", err)
		return
	}
	metrics.DonationsCreated.Inc()
	h.notify(c, domain.NotifDonation, "New donation",
		fmt.Sprintf("%s donated to %s", p.Name, org.Name))
	ok(c, http.StatusCreated, gin.H{"donation": d, "organization": gin.H{"id": org.ID, "name": org.Name}})
}

// ListMyDonations godoc
// @Summary Donor's own donations
// @Tags donations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/donations/donor [get]
func (h *Handler) ListMyDonations(c *gin.Context) {
	p := currentPrincipal(c)
	donations, err := h.Store.ListDonations(c.Request.Context(), repo.DonationFilter{DonorID: &p.ID})
	if err != nil {
		failInternal(c, "list donations", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(donations), "donations": donations})
}

// AdminListDonations accepts status, type, from and to query filters and
// returns the filtered set with aggregates derived at read time.
func (h *Handler) AdminListDonations(c *gin.Context) {
	f := repo.DonationFilter{}
	if v := c.Query("status"); v != "" {
		if !domain.ValidDonationStatus(v) {
			fail(c, http.StatusBadRequest, "unknown donation status")
			return
		}
		f.Status = v
	}
	if v := c.Query("type"); v != "" {
		if !domain.ValidDonationType(v) {
			fail(c, http.StatusBadRequest, "unknown donation type")
			return
		}
		f.Type = v
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			fail(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			fail(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
		f.To = &t
	}

	donations, err := h.Store.ListDonations(c.Request.Context(), f)
	if err != nil {
		failInternal(c, "list donations", err)
		return
	}
	agg, err := h.Store.AggregateDonations(c.Request.Context(), f)
	if err != nil {
		failInternal(c, "aggregate donations", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(donations), "donations": donations, "stats": agg})
}

type donationStatusReq struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// UpdateDonationStatus godoc
// @Summary Update donation status
// @Tags donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "donation id"
// @Param payload body donationStatusReq true "target status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/donations/admin/{id}/status [patch]
//
// Re-applying the current status is a no-op success; leaving a terminal
// state is rejected.
func (h *Handler) UpdateDonationStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid donation id")
		return
	}
	var in donationStatusReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Status == "" {
		fail(c, http.StatusBadRequest, "status is required")
		return
	}
	if !domain.ValidDonationStatus(in.Status) {
		fail(c, http.StatusBadRequest, "unknown donation status")
		return
	}

	cur, err := h.Store.FindDonationByID(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "find donation", err)
		return
	}
	if cur == nil {
		fail(c, http.StatusNotFound, "donation not found")
		return
	}
	if !domain.CanTransition(cur.Status, in.Status) {
		fail(c, http.StatusBadRequest, "donation is already "+cur.Status)
		return
	}

	d, err := h.Store.UpdateDonationStatus(c.Request.Context(), id, in.Status, in.TransactionID)
	if err != nil {
		failInternal(c, "update donation", err)
		return
	}
	if d == nil {
		fail(c, http.StatusNotFound, "donation not found")
		return
	}
	if cur.Status != d.Status {
		metrics.DonationTransitions.WithLabelValues(d.Status).Inc()
	}
	ok(c, http.StatusOK, gin.H{"donation": d})
}
