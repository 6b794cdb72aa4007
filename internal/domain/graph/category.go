package graph

type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (Category) TableName() string { return "category" }
