// Package schema has models, enums and render models for all parts of foodrank.
package schema

// Product is one food product under comparison.
// Nutrition values are per 100g. A nil pointer means the value was not
// reported, which is never the same thing as zero.
type Product struct {
	ProductID       string  `json:"product_id" yaml:"product_id" jsonschema:"required"`
	EAN             *string `json:"ean" yaml:"ean"`
	ProductName     string  `json:"product_name" yaml:"product_name" jsonschema:"required"`
	Brand           string  `json:"brand" yaml:"brand"`
	Category        string  `json:"category" yaml:"category"`
	CategoryDisplay string  `json:"category_display,omitempty" yaml:"category_display,omitempty"`
	CategoryIcon    string  `json:"category_icon,omitempty" yaml:"category_icon,omitempty"`

	// UnhealthinessScore is the primary ordering metric (lower is better).
	UnhealthinessScore float64 `json:"unhealthiness_score" yaml:"unhealthiness_score" jsonschema:"required,minimum=1,maximum=100"`
	NutriScore         *string `json:"nutri_score" yaml:"nutri_score" jsonschema:"enum=A,enum=B,enum=C,enum=D,enum=E"`
	NovaGroup          *string `json:"nova_group" yaml:"nova_group"`
	ProcessingRisk     string  `json:"processing_risk,omitempty" yaml:"processing_risk,omitempty"`

	Calories      *float64 `json:"calories" yaml:"calories"`
	TotalFatG     *float64 `json:"total_fat_g" yaml:"total_fat_g"`
	SaturatedFatG *float64 `json:"saturated_fat_g" yaml:"saturated_fat_g"`
	TransFatG     *float64 `json:"trans_fat_g" yaml:"trans_fat_g"`
	CarbsG        *float64 `json:"carbs_g" yaml:"carbs_g"`
	SugarsG       *float64 `json:"sugars_g" yaml:"sugars_g"`
	FibreG        *float64 `json:"fibre_g" yaml:"fibre_g"`
	ProteinG      *float64 `json:"protein_g" yaml:"protein_g"`
	SaltG         *float64 `json:"salt_g" yaml:"salt_g"`

	HighSalt         bool `json:"high_salt" yaml:"high_salt"`
	HighSugar        bool `json:"high_sugar" yaml:"high_sugar"`
	HighSatFat       bool `json:"high_sat_fat" yaml:"high_sat_fat"`
	HighAdditiveLoad bool `json:"high_additive_load" yaml:"high_additive_load"`

	AdditivesCount  *int    `json:"additives_count" yaml:"additives_count"`
	IngredientCount *int    `json:"ingredient_count" yaml:"ingredient_count"`
	AllergenCount   *int    `json:"allergen_count" yaml:"allergen_count"`
	AllergenTags    *string `json:"allergen_tags" yaml:"allergen_tags"`
	TraceTags       *string `json:"trace_tags" yaml:"trace_tags"`

	Confidence          string   `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	DataCompletenessPct *float64 `json:"data_completeness_pct" yaml:"data_completeness_pct"`
}

// DisplayName returns the product name, or its id when the name is empty.
func (p Product) DisplayName() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return p.ProductID
}
