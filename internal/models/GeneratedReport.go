package models

import (
	"time"
)

// GeneratedReport records one exported report artifact. The PDF itself
// is rendered and delivered elsewhere; only the export is persisted.
type GeneratedReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RouteResultID uint        `json:"route_result_id" gorm:"index;not null"`
	Result        RouteResult `gorm:"foreignKey:RouteResultID" json:"result,omitempty"`

	ReportType    string `json:"report_type" gorm:"not null;default:'route_summary'"`
	FileName      string `json:"file_name"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}
