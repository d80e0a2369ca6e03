package entity

// Setting is one key/value row of the store configuration blob. The whole
// collection is replaced on save; rows are never updated individually.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Well-known settings keys.
const (
	SettingStoreName = "storeName"
	SettingAddress   = "address"
	SettingPhone     = "phone"
	SettingTaxRate   = "taxRate"  // percent, stored as a string (e.g. "13")
	SettingCurrency  = "currency" // display symbol, e.g. "Rs."
)

// DefaultSettings returns the defaults substituted for any missing key.
func DefaultSettings() map[string]string {
	return map[string]string{
		SettingStoreName: "Pasal Grocery",
		SettingAddress:   "Kathmandu, Nepal",
		SettingPhone:     "9800000000",
		SettingTaxRate:   "13",
		SettingCurrency:  "Rs.",
	}
}
