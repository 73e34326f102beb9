package models

import "time"

type Setting struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Key         string    `json:"setting_key" gorm:"column:setting_key;uniqueIndex;not null"`
	Value       *string   `json:"setting_value" gorm:"column:setting_value"`
	Type        string    `json:"setting_type" gorm:"column:setting_type;default:'string'"`
	Description *string   `json:"description"`
	UpdatedBy   *uint     `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`

	UpdatedByName *string `json:"updated_by_name,omitempty" gorm:"->;-:migration"`
}

func (Setting) TableName() string {
	return "site_settings"
}

type Font struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Category string `json:"category"`
	RTL      bool   `json:"rtl,omitempty"`
}

var FontCatalog = []Font{
	{Name: "Inter", Value: "Inter", Category: "sans-serif"},
	{Name: "Roboto", Value: "Roboto", Category: "sans-serif"},
	{Name: "Open Sans", Value: "Open Sans", Category: "sans-serif"},
	{Name: "Poppins", Value: "Poppins", Category: "sans-serif"},
	{Name: "Montserrat", Value: "Montserrat", Category: "sans-serif"},
	{Name: "Lato", Value: "Lato", Category: "sans-serif"},
	{Name: "Nunito", Value: "Nunito", Category: "sans-serif"},
	{Name: "Raleway", Value: "Raleway", Category: "sans-serif"},
	{Name: "Ubuntu", Value: "Ubuntu", Category: "sans-serif"},
	{Name: "Outfit", Value: "Outfit", Category: "sans-serif"},
	{Name: "Plus Jakarta Sans", Value: "Plus Jakarta Sans", Category: "sans-serif"},
	{Name: "DM Sans", Value: "DM Sans", Category: "sans-serif"},
	{Name: "Space Grotesk", Value: "Space Grotesk", Category: "sans-serif"},
	{Name: "Manrope", Value: "Manrope", Category: "sans-serif"},
	{Name: "Work Sans", Value: "Work Sans", Category: "sans-serif"},
	{Name: "Playfair Display", Value: "Playfair Display", Category: "serif"},
	{Name: "Merriweather", Value: "Merriweather", Category: "serif"},
	{Name: "Lora", Value: "Lora", Category: "serif"},
	{Name: "Source Serif Pro", Value: "Source Serif Pro", Category: "serif"},
	{Name: "Noto Serif", Value: "Noto Serif", Category: "serif"},
	{Name: "Fira Code", Value: "Fira Code", Category: "monospace"},
	{Name: "JetBrains Mono", Value: "JetBrains Mono", Category: "monospace"},
	{Name: "Cairo", Value: "Cairo", Category: "sans-serif", RTL: true},
	{Name: "Tajawal", Value: "Tajawal", Category: "sans-serif", RTL: true},
	{Name: "Almarai", Value: "Almarai", Category: "sans-serif", RTL: true},
}
