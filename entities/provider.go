package entities

type Provider struct {
	ProviderID int64  `gorm:"primaryKey" json:"Provider_ID"`
	Name       string `gorm:"size:255" json:"Name"`
	Type       string `gorm:"size:100" json:"Type"` // Restaurant, Grocery Store, Supermarket, Catering Service
	Contact    string `gorm:"size:100" json:"Contact"`
	Address    string `gorm:"size:255" json:"Address"`
	City       string `gorm:"size:100;index" json:"City"`
}

type Receiver struct {
	ReceiverID int64  `gorm:"primaryKey" json:"Receiver_ID"`
	Name       string `gorm:"size:255" json:"Name"`
	Contact    string `gorm:"size:100" json:"Contact"`
	Address    string `gorm:"size:255" json:"Address"`
	City       string `gorm:"size:100;index" json:"City"`

	Claims []Claim `gorm:"foreignKey:ReceiverID;references:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
