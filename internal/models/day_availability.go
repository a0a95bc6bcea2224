package models

// DayAvailability overrides the provider's legacy weekday list with an
// explicit enabled flag plus optional working hours for one weekday.
// At most one record per (provider, day_of_week).
type DayAvailability struct {
	BaseModel

	ProviderID string `gorm:"size:36;index;uniqueIndex:idx_provider_day" json:"provider_id"`
	DayOfWeek  string `gorm:"size:10;uniqueIndex:idx_provider_day" json:"day_of_week"`

	Enabled   bool   `json:"enabled"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
}
