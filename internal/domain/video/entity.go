package video

import "time"

// Video is the record written once per successful upload. PublicID is the
// media host's durable asset reference and is never empty on a stored row;
// sizes are kept as strings exactly as reported.
type Video struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"column:title" json:"title"`
	Description    string    `gorm:"column:description" json:"description"`
	PublicID       string    `gorm:"column:public_id;not null" json:"public_id"`
	OriginalSize   string    `gorm:"column:original_size" json:"original_size"`
	CompressedSize string    `gorm:"column:compressed_size;not null" json:"compressed_size"`
	Duration       float64   `gorm:"column:duration" json:"duration"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Video) TableName() string { return "videos" }
