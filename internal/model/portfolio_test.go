package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceValidate(t *testing.T) {
	exp := Experience{
		CompanyName: "Acme",
		Position:    "Engineer",
		Logo:        "/acme.png",
		StartDate:   "2023",
		EndDate:     "Present",
		Description: "Did things.",
	}
	assert.NoError(t, exp.Validate())

	t.Run("names every missing field in stable order", func(t *testing.T) {
		err := (&Experience{Position: "Engineer", StartDate: "2023"}).Validate()
		require.Error(t, err)
		assert.Equal(t, "missing required fields: companyName, description, endDate, logo", err.Error())
	})

	t.Run("whitespace-only values count as missing", func(t *testing.T) {
		bad := exp
		bad.Logo = "   "
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logo")
	})
}

func TestSkillValidate(t *testing.T) {
	assert.NoError(t, (&Skill{Tech: "Go"}).Validate())
	assert.Error(t, (&Skill{}).Validate())
}

func TestProjectValidate(t *testing.T) {
	p := Project{
		Title:       "Site",
		Description: "A site.",
		Video:       "./site.mp4",
		Date:        "2024-07-01",
	}

	t.Run("link fields and badges are optional", func(t *testing.T) {
		assert.NoError(t, p.Validate())
	})

	t.Run("core fields are required", func(t *testing.T) {
		bad := p
		bad.Video = ""
		err := bad.Validate()
		require.Error(t, err)
		assert.Equal(t, "missing required fields: video", err.Error())
	})
}

func TestHistoryValidate(t *testing.T) {
	t.Run("empty type defaults to item", func(t *testing.T) {
		h := History{Title: "Hackathon"}
		require.NoError(t, h.Validate())
		assert.Equal(t, HistoryTypeItem, h.Type)
	})

	t.Run("section type is accepted", func(t *testing.T) {
		h := History{Type: HistoryTypeSection, SectionDescription: "about"}
		require.NoError(t, h.Validate())
		assert.Equal(t, HistoryTypeSection, h.Type)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		h := History{Type: "banner"}
		assert.Error(t, h.Validate())
	})

	t.Run("no required fields", func(t *testing.T) {
		assert.NoError(t, (&History{}).Validate())
	})
}
