package services

import (
	"regexp"
	"strings"

	"courier-profit-service/internal/domain"
)

// ClassifierHints carries structured signals from the geocoder that the raw
// text alone cannot provide.
type ClassifierHints struct {
	HasBlockNumber  bool
	HasBuildingName bool
}

// classificationRule is one entry in the ordered rule table. A rule matches
// when any keyword is a substring of the uppercased text, the pattern matches,
// or the extra predicate fires. A guard, when present, must pass before the
// rule is considered at all.
type classificationRule struct {
	category domain.BuildingType
	keywords []string
	pattern  *regexp.Regexp
	extra    func(hints ClassifierHints) bool
	guard    func(text string, hints ClassifierHints) bool
}

// BuildingClassifier maps free-text address/building strings to a building
// type using an ordered keyword table. First match wins.
type BuildingClassifier struct {
	rules []classificationRule
}

func NewBuildingClassifier() *BuildingClassifier {
	return &BuildingClassifier{rules: defaultRules()}
}

func defaultRules() []classificationRule {
	return []classificationRule{
		{
			category: domain.BuildingHDB,
			keywords: []string{"HDB", "BLK", "BLOCK"},
			pattern:  regexp.MustCompile(`BLK\s*\d+`),
			extra:    func(h ClassifierHints) bool { return h.HasBlockNumber },
		},
		{
			category: domain.BuildingCondo,
			keywords: []string{
				"CONDO", "CONDOMINIUM", "RESIDENCE", "RESIDENCES", "APARTMENT",
				"SUITES", "LODGE", "MANSIONS", "HEIGHTS", "GARDENS", "VILLA",
				"VILLAS", "COURT",
			},
		},
		{
			category: domain.BuildingOffice,
			keywords: []string{
				"TOWER", "TOWERS", "BUILDING", "CENTRE", "CENTER", "PLAZA",
				"COMPLEX", "HOUSE", "PLACE", "SQUARE", "OFFICE", "CORPORATE",
				"BUSINESS",
			},
		},
		{
			category: domain.BuildingMall,
			keywords: []string{
				"MALL", "SHOPPING", "RETAIL", "CITY", "JUNCTION", "POINT",
				"MARKET", "MART",
			},
		},
		{
			category: domain.BuildingIndustrial,
			keywords: []string{
				"INDUSTRIAL", "FACTORY", "WAREHOUSE", "LOGISTICS", "TECHPARK",
				"TECH PARK", "BIZPARK", "BIZ HUB", "IND PARK",
			},
		},
		{
			category: domain.BuildingLanded,
			keywords: []string{
				"TERRACE", "DRIVE", "AVENUE", "ROAD", "STREET", "LANE",
				"CLOSE", "CRESCENT", "WALK",
			},
			// Street-name keywords appear in nearly every address; only treat
			// them as landed housing when nothing points at a block or a named
			// building.
			guard: func(text string, h ClassifierHints) bool {
				return !strings.Contains(text, "BLK") &&
					!strings.Contains(text, "#") &&
					!h.HasBuildingName
			},
		},
	}
}

// Classify uppercases the input and walks the rule table in order, returning
// the category of the first matching rule, or unknown. Pure function.
func (c *BuildingClassifier) Classify(text string, hints ClassifierHints) domain.BuildingType {
	upper := strings.ToUpper(text)

	for _, rule := range c.rules {
		if rule.guard != nil && !rule.guard(upper, hints) {
			continue
		}
		if rule.extra != nil && rule.extra(hints) {
			return rule.category
		}
		if rule.pattern != nil && rule.pattern.MatchString(upper) {
			return rule.category
		}
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.category
			}
		}
	}

	return domain.BuildingUnknown
}
