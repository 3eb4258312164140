package department

type Department struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex;not null"`
	Description *string `gorm:"column:description"`
}

func (Department) TableName() string {
	return "departments"
}
