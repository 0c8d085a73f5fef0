package enum

// TemplateCategory groups designs in the template gallery
type TemplateCategory string

const (
	CategoryBusiness   TemplateCategory = "business"
	CategoryTech       TemplateCategory = "tech"
	CategoryGeometric  TemplateCategory = "geometric"
	CategoryVintage    TemplateCategory = "vintage"
	CategoryFinancial  TemplateCategory = "financial"
	CategoryLegal      TemplateCategory = "legal"
	CategoryHealthcare TemplateCategory = "healthcare"
	CategoryCreative   TemplateCategory = "creative"
)

func (c TemplateCategory) String() string {
	return string(c)
}
