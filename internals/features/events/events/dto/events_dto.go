package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"robostaff_backend/internals/features/events/events/model"
)

// Format tanggal yang dipakai di seluruh payload event.
const DateLayout = "2006-01-02"

// 🔹 Tautan dokumen {title, url} — dipakai event & role
type DocumentLink struct {
	Title string `json:"title" validate:"required,max=255"`
	URL   string `json:"url" validate:"required,url,max=1000"`
}

// 🔹 Request membuat event baru
type CreateEventRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Tagname   string `json:"tagname" validate:"required,max=255"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (r *CreateEventRequest) ToModel() (*model.EventModel, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.EventModel{
		EventName:      r.Name,
		EventTagname:   r.Tagname,
		EventStartDate: start,
		EventEndDate:   end,
	}, nil
}

// 🔹 Request update event (semua field opsional)
type UpdateEventRequest struct {
	Name                  *string        `json:"name" validate:"omitempty,max=255"`
	ShortDescription      *string        `json:"short_description" validate:"omitempty,max=1000"`
	LongDescription       *string        `json:"long_description" validate:"omitempty,max=10000"`
	StartDate             *string        `json:"start_date"`
	EndDate               *string        `json:"end_date"`
	Location              *string        `json:"location" validate:"omitempty,max=255"`
	ContactEmail          *string        `json:"contact_email" validate:"omitempty,email,max=255"`
	WhatsappLink          *string        `json:"whatsapp_link" validate:"omitempty,url,max=1000"`
	GeneralDocumentsLinks []DocumentLink `json:"general_documents_links" validate:"omitempty,dive"`
}

// ApplyTo menyalin field terkirim ke model; return true kalau rentang tanggal berubah.
func (r *UpdateEventRequest) ApplyTo(m *model.EventModel) (bool, error) {
	datesChanged := false

	if r.Name != nil {
		m.EventName = *r.Name
	}
	if r.ShortDescription != nil {
		m.EventShortDescription = r.ShortDescription
	}
	if r.LongDescription != nil {
		m.EventLongDescription = r.LongDescription
	}
	if r.StartDate != nil {
		start, err := time.Parse(DateLayout, *r.StartDate)
		if err != nil {
			return false, err
		}
		m.EventStartDate = start
		datesChanged = true
	}
	if r.EndDate != nil {
		end, err := time.Parse(DateLayout, *r.EndDate)
		if err != nil {
			return false, err
		}
		m.EventEndDate = end
		datesChanged = true
	}
	if r.Location != nil {
		m.EventLocation = r.Location
	}
	if r.ContactEmail != nil {
		m.EventContactEmail = r.ContactEmail
	}
	if r.WhatsappLink != nil {
		m.EventWhatsappLink = r.WhatsappLink
	}
	if r.GeneralDocumentsLinks != nil {
		if raw, err := json.Marshal(r.GeneralDocumentsLinks); err == nil {
			m.EventGeneralDocumentsLinks = datatypes.JSON(raw)
		}
	}
	return datesChanged, nil
}

// 🔹 Request role event
type EventRoleRequest struct {
	Designation    string         `json:"designation" validate:"required,max=255"`
	NumberRequired int            `json:"number_required" validate:"min=0"`
	DocumentLinks  []DocumentLink `json:"document_links" validate:"omitempty,dive"`
}

func (r *EventRoleRequest) ToModel(eventID uuid.UUID) *model.EventRoleModel {
	role := &model.EventRoleModel{
		EventRoleEventID:        eventID,
		EventRoleDesignation:    r.Designation,
		EventRoleNumberRequired: r.NumberRequired,
	}
	if r.DocumentLinks != nil {
		if raw, err := json.Marshal(r.DocumentLinks); err == nil {
			role.EventRoleDocumentLinks = datatypes.JSON(raw)
		}
	}
	return role
}

// 🔹 Request jadwal satu hari event
type DayScheduleRequest struct {
	Schedule *string `json:"schedule" validate:"omitempty,max=10000"`
}

// 🔹 Request copy event
type CopyEventRequest struct {
	NewTagname string `json:"new_tagname" validate:"required,max=255"`
}

// 🔹 Response event + turunannya
type EventResponse struct {
	EventID               uuid.UUID             `json:"event_id"`
	Name                  string                `json:"name"`
	Tagname               string                `json:"tagname"`
	ShortDescription      *string               `json:"short_description,omitempty"`
	LongDescription       *string               `json:"long_description,omitempty"`
	StartDate             string                `json:"start_date"`
	EndDate               string                `json:"end_date"`
	DurationInDays        int                   `json:"duration_in_days"`
	Location              *string               `json:"location,omitempty"`
	ContactEmail          *string               `json:"contact_email,omitempty"`
	LogoPath              *string               `json:"logo_path,omitempty"`
	WhatsappLink          *string               `json:"whatsapp_link,omitempty"`
	GeneralDocumentsLinks datatypes.JSON        `json:"general_documents_links,omitempty"`
	Days                  []EventDayResponse    `json:"days,omitempty"`
	Roles                 []EventRoleResponse   `json:"roles,omitempty"`
}

type EventDayResponse struct {
	EventDayID uuid.UUID `json:"event_day_id"`
	Date       string    `json:"date"`
	Schedule   *string   `json:"schedule,omitempty"`
}

type EventRoleResponse struct {
	EventRoleID    uuid.UUID      `json:"event_role_id"`
	Designation    string         `json:"designation"`
	NumberRequired int            `json:"number_required"`
	DocumentLinks  datatypes.JSON `json:"document_links,omitempty"`
	AssignedCount  int64          `json:"assigned_count"`
	FullyStaffed   bool           `json:"fully_staffed"`
}

func ToEventResponse(m *model.EventModel, days []model.EventDayModel, roles []EventRoleResponse) *EventResponse {
	resp := &EventResponse{
		EventID:               m.EventID,
		Name:                  m.EventName,
		Tagname:               m.EventTagname,
		ShortDescription:      m.EventShortDescription,
		LongDescription:       m.EventLongDescription,
		StartDate:             m.EventStartDate.Format(DateLayout),
		EndDate:               m.EventEndDate.Format(DateLayout),
		DurationInDays:        m.DurationInDays(),
		Location:              m.EventLocation,
		ContactEmail:          m.EventContactEmail,
		LogoPath:              m.EventLogoPath,
		WhatsappLink:          m.EventWhatsappLink,
		GeneralDocumentsLinks: m.EventGeneralDocumentsLinks,
		Roles:                 roles,
	}
	for _, d := range days {
		resp.Days = append(resp.Days, ToEventDayResponse(&d))
	}
	return resp
}

func ToEventDayResponse(d *model.EventDayModel) EventDayResponse {
	return EventDayResponse{
		EventDayID: d.EventDayID,
		Date:       d.EventDayDate.Format(DateLayout),
		Schedule:   d.EventDaySchedule,
	}
}

func ToEventRoleResponse(r *model.EventRoleModel, assignedCount int64) EventRoleResponse {
	return EventRoleResponse{
		EventRoleID:    r.EventRoleID,
		Designation:    r.EventRoleDesignation,
		NumberRequired: r.EventRoleNumberRequired,
		DocumentLinks:  r.EventRoleDocumentLinks,
		AssignedCount:  assignedCount,
		FullyStaffed:   assignedCount >= int64(r.EventRoleNumberRequired),
	}
}
