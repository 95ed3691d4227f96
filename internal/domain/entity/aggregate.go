package entity

// GroupCount is one row of a GROUP BY ... COUNT(*) query.
type GroupCount struct {
	Key   string `gorm:"column:key"`
	Total int64  `gorm:"column:total"`
}
