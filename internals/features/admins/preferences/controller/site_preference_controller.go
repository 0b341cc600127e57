package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/admins/preferences/model"
	helper "robostaff_backend/internals/helpers"
)

var validate = validator.New()

type SitePreferenceController struct {
	DB *gorm.DB
}

func NewSitePreferenceController(db *gorm.DB) *SitePreferenceController {
	return &SitePreferenceController{DB: db}
}

// 🟢 GET /preferences — publik, dipakai halaman depan
func (ctrl *SitePreferenceController) Show(c *fiber.Ctx) error {
	pref, err := model.Load(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] Gagal load preferensi situs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil preferensi situs")
	}
	return helper.Success(c, "Preferensi situs", pref)
}

type updatePreferencesRequest struct {
	AssociationDescription *string `json:"association_description" validate:"omitempty,max=10000"`
	LogoPath               *string `json:"logo_path" validate:"omitempty,max=1000"`
	WebsiteURL             *string `json:"website_url" validate:"omitempty,url,max=1000"`
	GeneralWhatsappLink    *string `json:"general_whatsapp_link" validate:"omitempty,url,max=1000"`
}

// 🟢 PUT /admin/preferences
func (ctrl *SitePreferenceController) Update(c *fiber.Ctx) error {
	var req updatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	pref, err := model.Load(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil preferensi situs")
	}

	if req.AssociationDescription != nil {
		pref.AssociationDescription = req.AssociationDescription
	}
	if req.LogoPath != nil {
		pref.LogoPath = req.LogoPath
	}
	if req.WebsiteURL != nil {
		pref.WebsiteURL = req.WebsiteURL
	}
	if req.GeneralWhatsappLink != nil {
		pref.GeneralWhatsappLink = req.GeneralWhatsappLink
	}

	if err := ctrl.DB.Save(pref).Error; err != nil {
		log.Printf("[ERROR] Gagal simpan preferensi situs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi situs")
	}
	return helper.Success(c, "Preferensi situs diperbarui", pref)
}
