package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
)

// ListOrganizations godoc
// @Summary List organizations (public)
// @Tags organizations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/organizations [get]
func (h *Handler) ListOrganizations(c *gin.Context) {
	orgs, err := h.Store.ListOrganizations(c.Request.Context())
	if err != nil {
		failInternal(c, "list organizations", err)
		return
	}
	ok(c, http.StatusOK, gin.H{"results": len(orgs), "organizations": orgs})
}

func (h *Handler) GetOrganization(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid organization id")
		return
	}
	o, err := h.Store.FindOrganizationByID(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "find organization", err)
		return
	}
	if o == nil {
		fail(c, http.StatusNotFound, "organization not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"organization": o})
}

type organizationReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// CreateOrganization godoc
// @Summary Create organization
// @Tags organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body organizationReq true "organization"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/organizations [post]
func (h *Handler) CreateOrganization(c *gin.Context) {
	var in organizationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case strings.TrimSpace(in.Name) == "" || in.Description == "" || in.Phone == "" ||
		in.Address == "" || in.Website == "" || in.Category == "":
		fail(c, http.StatusBadRequest, "name, description, email, phone, address, website and category are required")
		return
	case !domain.ValidEmail(email):
		fail(c, http.StatusBadRequest, "please provide a valid email")
		return
	case !domain.ValidOrgCategory(in.Category):
		fail(c, http.StatusBadRequest, "unknown organization category")
		return
	}
	if in.Status == "" {
		in.Status = domain.OrgStatusPending
	}
	if !domain.ValidOrgStatus(in.Status) {
		fail(c, http.StatusBadRequest, "unknown organization status")
		return
	}

	o := &domain.Organization{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Email:       email,
		Phone:       in.Phone,
		Address:     in.Address,
		Website:     in.Website,
		Category:    in.Category,
		Status:      in.Status,
	}
	if err := h.Store.CreateOrganization(c.Request.Context(), o); err != nil {
		if isDup(err) {
			fail(c, http.StatusBadRequest, "organization email already in use")
			return
		}
		failInternal(c, "create organization", err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"organization": o})
}

// UpdateOrganization merges only the supplied fields.
func (h *Handler) UpdateOrganization(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid organization id")
		return
	}
	var in organizationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	fields := bson.M{}
	if v := strings.TrimSpace(in.Name); v != "" {
		fields["name"] = v
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		if !domain.ValidEmail(v) {
			fail(c, http.StatusBadRequest, "please provide a valid email")
			return
		}
		fields["email"] = v
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if in.Website != "" {
		fields["website"] = in.Website
	}
	if in.Category != "" {
		if !domain.ValidOrgCategory(in.Category) {
			fail(c, http.StatusBadRequest, "unknown organization category")
			return
		}
		fields["category"] = in.Category
	}
	if in.Status != "" {
		if !domain.ValidOrgStatus(in.Status) {
			fail(c, http.StatusBadRequest, "unknown organization status")
			return
		}
		fields["status"] = in.Status
	}
	if len(fields) == 0 {
		fail(c, http.StatusBadRequest, "nothing to update")
		return
	}

	o, err := h.Store.UpdateOrganization(c.Request.Context(), id, fields)
	if err != nil {
		if isDup(err) {
			fail(c, http.StatusBadRequest, "organization email already in use")
			return
		}
		failInternal(c, "update organization", err)
		return
	}
	if o == nil {
		fail(c, http.StatusNotFound, "organization not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"organization": o})
}

func (h *Handler) DeleteOrganization(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid organization id")
		return
	}
	deleted, err := h.Store.DeleteOrganization(c.Request.Context(), id)
	if err != nil {
		failInternal(c, "delete organization", err)
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "organization not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "organization removed"})
}
