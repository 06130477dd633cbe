package models

type Reward struct {
	RewardID      int    `gorm:"column:reward_id;primaryKey;autoIncrement" json:"reward_id"`
	RewardName    string `gorm:"column:reward_name;type:varchar(100);not null" json:"reward_name"`
	Description   string `gorm:"column:description;type:text" json:"description"`
	BooksRequired int    `gorm:"column:books_required;type:int;not null" json:"books_required"`
	IsActive      bool   `gorm:"column:is_active;type:boolean;default:true" json:"is_active"`
}

func (Reward) TableName() string {
	return "rewards"
}
