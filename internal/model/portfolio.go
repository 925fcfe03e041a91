package model

import (
	"fmt"
	"sort"
	"strings"
)

// History record discriminator values. An item appears on the public
// timeline; the single section record holds the timeline's description text.
const (
	HistoryTypeItem    = "item"
	HistoryTypeSection = "section"
)

// SectionID is the fixed identifier of the singleton history-section record.
const SectionID = "section"

// Experience is one work-experience entry. All fields are required; dates are
// free-form strings ("2023", "Present"), sorted lexically for display.
type Experience struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	Logo        string `json:"logo"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func (e *Experience) RecordID() string      { return e.ID }
func (e *Experience) SetRecordID(id string) { e.ID = id }

func (e *Experience) Validate() error {
	return requireFields(map[string]string{
		"companyName": e.CompanyName,
		"position":    e.Position,
		"logo":        e.Logo,
		"startDate":   e.StartDate,
		"endDate":     e.EndDate,
		"description": e.Description,
	})
}

// Education shares the Experience shape: companyName holds the institution
// and position the degree.
type Education struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	Logo        string `json:"logo"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func (e *Education) RecordID() string      { return e.ID }
func (e *Education) SetRecordID(id string) { e.ID = id }

func (e *Education) Validate() error {
	return requireFields(map[string]string{
		"companyName": e.CompanyName,
		"position":    e.Position,
		"logo":        e.Logo,
		"startDate":   e.StartDate,
		"endDate":     e.EndDate,
		"description": e.Description,
	})
}

// Skill is a single technology badge.
type Skill struct {
	ID   string `json:"id"`
	Tech string `json:"tech"`
}

func (s *Skill) RecordID() string      { return s.ID }
func (s *Skill) SetRecordID(id string) { s.ID = id }

func (s *Skill) Validate() error {
	return requireFields(map[string]string{"tech": s.Tech})
}

// Project is a showcased project. Badges is an ordered list of tags; the
// admin dashboard edits it as a comma-separated string.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Video       string   `json:"video"`
	Date        string   `json:"date"`
	Badges      []string `json:"badges"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	LiveText    string   `json:"liveText,omitempty"`
	GithubText  string   `json:"githubText,omitempty"`
}

func (p *Project) RecordID() string      { return p.ID }
func (p *Project) SetRecordID(id string) { p.ID = id }

func (p *Project) Validate() error {
	return requireFields(map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"video":       p.Video,
		"date":        p.Date,
	})
}

// History is a timeline entry (hackathons, achievements). Fields are optional
// at the schema level. Records with Type == HistoryTypeSection are excluded
// from the public timeline; at most one such record should exist and it holds
// the timeline's SectionDescription instead of entry fields.
type History struct {
	ID                 string `json:"id"`
	Type               string `json:"type,omitempty"`
	Logo               string `json:"logo,omitempty"`
	Date               string `json:"date,omitempty"`
	Title              string `json:"title,omitempty"`
	Place              string `json:"place,omitempty"`
	Info               string `json:"info,omitempty"`
	GithubURL          string `json:"githubUrl,omitempty"`
	SiteURL            string `json:"siteUrl,omitempty"`
	SectionDescription string `json:"sectionDescription,omitempty"`
}

func (h *History) RecordID() string      { return h.ID }
func (h *History) SetRecordID(id string) { h.ID = id }

// Validate applies the item default for an empty type and rejects unknown
// discriminator values. History has no required fields beyond that.
func (h *History) Validate() error {
	switch h.Type {
	case "":
		h.Type = HistoryTypeItem
	case HistoryTypeItem, HistoryTypeSection:
	default:
		return fmt.Errorf("unknown history type %q", h.Type)
	}
	return nil
}

// requireFields returns an error naming every empty required field.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	// Stable order for error messages and tests.
	sort.Strings(missing)
	return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
}
