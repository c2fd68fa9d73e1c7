package models

// Visit is one recorded page view. Write-only traffic telemetry,
// never exposed through the API.
type Visit struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Path string `json:"path" gorm:"not null"`
	UA   string `json:"ua" gorm:"column:ua;not null"`
	TS   string `json:"ts" gorm:"column:ts;not null"`
}
