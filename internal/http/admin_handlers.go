package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
	"github.com/givehub/backend/internal/repo"
	"github.com/givehub/backend/internal/security"
)

// AdminLogin godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body loginReq true "login"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		fail(c, http.StatusBadRequest, "please provide email and password")
		return
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	a, err := h.Store.FindAdminByEmail(c.Request.Context(), email)
	if err != nil {
		failInternal(c, "find admin", err)
		return
	}
	if a == nil || !security.CheckPassword(a.PasswordHash, in.Password) {
		fail(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}
	tok, err := security.MakeToken(h.JWTSecret, a.ID.Hex(), h.TokenTTL)
	if err != nil {
		failInternal(c, "sign token", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"admin": a, "token": tok})
}

func (h *Handler) AdminProfile(c *gin.Context) {
	p := currentPrincipal(c)
	a, err := h.Store.FindAdminByID(c.Request.Context(), p.ID)
	if err != nil {
		failInternal(c, "find admin", err)
		return
	}
	if a == nil {
		fail(c, http.StatusNotFound, "admin not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"admin": a})
}

func (h *Handler) AdminListDonors(c *gin.Context) {
	donors, err := h.Store.ListDonors(c.Request.Context())
	if err != nil {
		failInternal(c, "list donors", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(donors), "donors": donors})
}

// AdminStats godoc
// @Summary Platform totals
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/stats [get]
func (h *Handler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()
	agg, err := h.Store.AggregateDonations(ctx, repo.DonationFilter{})
	if err != nil {
		failInternal(c, "aggregate donations", err)
		return
	}
	orgs, err := h.Store.CountOrganizations(ctx)
	if err != nil {
		failInternal(c, "count organizations", err)
		return
	}
	donors, err := h.Store.CountDonors(ctx)
	if err != nil {
		failInternal(c, "count donors", err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"totalDonations":     agg.TotalCount,
		"totalAmount":        agg.TotalAmount,
		"totalOrganizations": orgs,
		"totalUsers":         donors,
	})
}

func (h *Handler) AdminListUsers(c *gin.Context) {
	donors, err := h.Store.ListDonors(c.Request.Context())
	if err != nil {
		failInternal(c, "list donors", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(donors), "users": donors})
}

func (h *Handler) AdminGetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}
	d, err := h.Store.FindDonorByID(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "find donor", err)
		return
	}
	if d == nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": d})
}

type userPatch struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (h *Handler) AdminUpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}
	var in userPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	fields := bson.M{}
	if v := strings.TrimSpace(in.Name); v != "" {
		fields["name"] = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		if !domain.ValidEmail(v) {
			fail(c, http.StatusBadRequest, "please provide a valid email")
			return
		}
		fields["email"] = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		fields["phone"] = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		fields["address"] = v
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			fail(c, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hash, err := security.HashPassword(in.Password)
		if err != nil {
			failInternal(c, "hash password", err)
			return
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		fail(c, http.StatusBadRequest, "nothing to update")
		return
	}
	d, err := h.Store.UpdateDonor(c.Request.Context(), id, fields)
	if err != nil {
		if isDup(err) {
			fail(c, http.StatusBadRequest, "email already in use")
			return
		}
		failInternal(c, "update donor", err)
		return
	}
	if d == nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": d})
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}
	deleted, err := h.Store.DeleteDonor(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "delete donor", err)
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "user removed"})
}
