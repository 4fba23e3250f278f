package models

import (
	"encoding/json"
	"time"

	"github.com/mobilitree/backend/internal/domain/tariff"
	"go.uber.org/zap"
)

var modelLogger = zap.L().Named("tariff.models")

// FacilityModel is the persistence model for a parking facility and its
// active tariff schedule. Rate bands are stored as JSONB documents, one
// column per day class.
type FacilityModel struct {
	FacilityID       string    `gorm:"type:varchar(64);primary_key"`
	WeekdayBandsJSON string    `gorm:"column:weekday_bands;type:jsonb;not null;default:'[]'"`
	WeekendBandsJSON string    `gorm:"column:weekend_bands;type:jsonb;not null;default:'[]'"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FacilityModel) TableName() string {
	return "facilities"
}

// ToDomain converts the persistence model to a domain TariffSchedule
func (m *FacilityModel) ToDomain() *tariff.TariffSchedule {
	return &tariff.TariffSchedule{
		FacilityID:   m.FacilityID,
		WeekdayBands: parseBands(m.FacilityID, "weekday_bands", m.WeekdayBandsJSON),
		WeekendBands: parseBands(m.FacilityID, "weekend_bands", m.WeekendBandsJSON),
	}
}

func parseBands(facilityID, column, raw string) []tariff.RateBand {
	bands := make([]tariff.RateBand, 0)
	if raw == "" || raw == "[]" {
		return bands
	}
	if err := json.Unmarshal([]byte(raw), &bands); err != nil {
		modelLogger.Warn("failed to parse rate band JSON",
			zap.String("facility_id", facilityID),
			zap.String("column", column),
			zap.Error(err))
	}
	return bands
}

// FacilityModelFromDomain creates a persistence model from a domain TariffSchedule
func FacilityModelFromDomain(s *tariff.TariffSchedule) *FacilityModel {
	return &FacilityModel{
		FacilityID:       s.FacilityID,
		WeekdayBandsJSON: marshalBands(s.WeekdayBands),
		WeekendBandsJSON: marshalBands(s.WeekendBands),
	}
}

func marshalBands(bands []tariff.RateBand) string {
	if len(bands) == 0 {
		return "[]"
	}
	jsonBytes, err := json.Marshal(bands)
	if err != nil {
		return "[]"
	}
	return string(jsonBytes)
}
