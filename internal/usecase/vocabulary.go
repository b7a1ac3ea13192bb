package usecase

import (
	"sort"
	"strings"

	"github.com/autobake/backend/internal/domain"
)

// Default fallbacks for products and groups missing from the curated tables.
const (
	DefaultGroup = "General Products"
	DefaultStage = "General Processing"
)

// Classification thresholds for the two fuzzy call sites. Category labels in
// the catalog vary less than free text, so they are held to a higher bar.
const (
	CategoryMatchThreshold = 85
	ProductMatchThreshold  = 80
)

// productSynonyms maps raw product spellings to canonical product names.
// Every value is a fixed point of NormalizeProduct.
var productSynonyms = map[string]string{
	"bread": "bread", "bred": "bread", "brown bred": "brown bread", "brown bread": "brown bread",
	"white bread": "white bread", "sour dough bread": "sourdough bread", "sourdough bread": "sourdough bread",
	"bun": "bun", "buns": "bun", "roll": "roll", "rolls": "roll",
	"doughnut": "donut", "doughnuts": "donut", "donut": "donut", "donuts": "donut",
	"hotdog": "hot dog", "hot dog": "hot dog",
	"cake": "cake", "cakes": "cake", "cupcake": "cup cake", "cupcakes": "cup cake",
	"pastry": "pastry", "pastries": "pastry",
	"pizza base": "pizza base", "pizza bases": "pizza base",
	"naan": "naan", "naans": "naan",
	"chapati": "chapati", "chapatis": "chapati",
	"biscuit": "biscuit", "biscuits": "biscuit",
	"cookie": "cookie", "cookies": "cookie", "cooky": "cookie",
	"rusk": "rusk", "rusks": "rusk",
	"muffin": "muffin", "muffins": "muffin",
	"croissant": "croissant", "croissants": "croissant",
	"toast": "toast", "toasts": "toast",
	"puff": "puff pastry", "puffs": "puff pastry",
	"baguette": "baguette", "baguettes": "baguette",
	"brioche": "brioche", "brioches": "brioche",
	"kulcha": "kulcha", "kulchas": "kulcha",
	"swiss roll": "swiss roll", "swiss rolls": "swiss roll",
	"eclair": "eclair", "eclairs": "eclair",
	"macaron": "macaron", "macarons": "macaron",
	"creme roll": "cream roll", "cream roll": "cream roll",
	"pizza": "pizza base",
}

// stageSynonym pairs a catalog category phrasing with its canonical stage.
type stageSynonym struct {
	Category string
	Stage    string
}

// stageSynonyms is the category vocabulary for stage classification. The
// slice order is part of the contract: the classifier resolves score ties in
// favor of the earliest entry.
var stageSynonyms = []stageSynonym{
	{"Spiral Mixer", "Mixing"}, {"Reinforced Spiral Mixer with Fixed Bowl", "Mixing"},
	{"Hydraulic Bowl Lifter", "Mixing"}, {"Spiral Mixer (Fixed Bowl)", "Mixing"},
	{"Spiral Mixer with Hydraulic Lifter", "Mixing"}, {"Mixer", "Mixing"},
	{"Planetary Mixer", "Mixing"}, {"Dough Mixer", "Mixing"},

	{"Automatic divider & rounder", "Dividing"}, {"Automatic Divider and Moulder", "Dividing"},
	{"Dough Divider", "Dividing"}, {"Dough Rounder", "Dividing"},

	{"Automatic Cream Roll Forming", "Forming"}, {"Cookie Dropping Machine", "Forming"},
	{"Wire Cut Cookie Machine", "Forming"}, {"Rotary Moulder", "Forming"},
	{"Dough Moulder", "Forming"}, {"Sheeter", "Forming"}, {"Laminator", "Forming"},
	{"Depositor", "Depositing"}, {"Dough Former", "Forming"}, {"Extruder", "Forming"},

	{"Confectionery depositor", "Depositing"}, {"Automatic Confectionery Depositer", "Depositing"},
	{"Inline Depositing & Decorating", "Depositing"},

	{"Depositing & Icing", "Finishing"}, {"Depositing Injecting & Icing", "Finishing"},
	{"Depositing & Injecting", "Filling"}, {"Filling", "Filling"},

	{"Convection oven", "Baking"}, {"Fryer", "Baking"},
	{"Cyclothermic Deck Oven", "Baking"}, {"Rotary Rack Oven", "Baking"},
	{"Rotary Convection Oven", "Baking"}, {"Electric Deck Oven", "Baking"},
	{"Tunnel Oven", "Baking"}, {"Industrial Oven", "Baking"},

	{"Vacuum Cooler", "Cooling"}, {"Cooling Conveyor", "Cooling"}, {"Cooling Tunnel", "Cooling"},

	{"Slicing", "Slicing"}, {"Slicing & Packing Line", "Slicing"},
	{"Bread Slicer", "Slicing"}, {"Automatic Commercial Bread Slicer", "Slicing"},
	{"Automatic Bread Slicer", "Slicing"}, {"Cake Slicer", "Slicing"},

	{"Sourdough Fermenter", "Fermentation"}, {"Proofer", "Proofing"},
	{"Intermediate Proofer", "Proofing"},

	{"Packing Machine", "Packing"}, {"Flow Wrap Machine", "Packing"},
	{"Vertical Form Fill Seal Machine", "Packing"}, {"Horizontal Flow Wrapper", "Packing"},
	{"Packaging Machine", "Packing"},

	{"Syrup Spraying", "Finishing"}, {"Glazer", "Finishing"},
	{"Decorating Machine", "Finishing"}, {"Enrober", "Finishing"},

	{"Automatic Cake Line", "Complete Line"}, {"Integrated Bread Line", "Complete Line"},
	{"Integrated Bun Line", "Complete Line"}, {"Integrated Cookie Line", "Complete Line"},
	{"Integrated Donut Line", "Complete Line"}, {"Integrated Pastry Line", "Complete Line"},
	{"General Purpose", "General Processing"}, {"Industrial Line", "Complete Line"},
}

// Derived lookups over stageSynonyms, built once at init.
var (
	stageCategoryNames []string
	stageByCategory    map[string]string
)

func init() {
	stageCategoryNames = make([]string, 0, len(stageSynonyms))
	stageByCategory = make(map[string]string, len(stageSynonyms))
	for _, s := range stageSynonyms {
		stageCategoryNames = append(stageCategoryNames, s.Category)
		stageByCategory[s.Category] = s.Stage
	}
}

// curatedProductGroups maps canonical products to their production-line
// group. Products absent here fall back to DefaultGroup when the vocabulary
// is built.
//
// Note: "baguette" maps to the literal string "baguette" rather than a line
// name, faithfully carried over from the source data. It routes through the
// default template until the data owner confirms the intended group.
var curatedProductGroups = map[string]string{
	"bun": "Bun & Pav Line", "long bun": "Bun & Pav Line", "ladi pav": "Bun & Pav Line",
	"fruit bun": "Bun & Pav Line", "hamburger bun": "Bun & Pav Line",
	"dinner roll": "Bun & Pav Line", "hot dog": "Bun & Pav Line",
	"burger bun": "Bun & Pav Line", "pav": "Bun & Pav Line",

	"bread loaf": "Bread Line", "white bread": "Bread Line",
	"tin bread": "Bread Line", "brown bread": "Bread Line",
	"sandwich bread": "Bread Line",

	"atta cookie": "Cookie Line", "butter cookie": "Cookie Line",
	"choco-filled cookie": "Cookie Line", "checkered cookie": "Cookie Line",
	"coconut biscuit": "Cookie Line", "danish cookie": "Cookie Line",
	"drop cookie": "Cookie Line", "date bar cookie": "Cookie Line",
	"long drop cookie": "Cookie Line", "rotary cookie": "Cookie Line",
	"shortbread cookie": "Cookie Line", "neapolitan cookie": "Cookie Line",
	"viennese whirl": "Cookie Line", "wirecut cookie": "Cookie Line",
	"jeera butter": "Biscuit & Snack Line",

	"banana cake": "Cake Line", "barni cake": "Cake Line",
	"battenberg cake": "Cake Line", "carrot cake": "Cake Line",
	"cup cake": "Cake Line", "muffin": "Cake Line",
	"rainbow muffin": "Cake Line", "plum cake": "Cake Line",
	"slice cake": "Cake Line", "sponge cake": "Cake Line",
	"sponge sheet": "Cake Line", "finger cake": "Cake Line",
	"pound cake": "Cake Line", "bar cake": "Cake Line",

	"cream filled muffin": "Confectionery & Filled Line",
	"swiss roll":          "Confectionery & Filled Line",
	"swiss roll sheet":    "Confectionery & Filled Line",
	"jam roll":            "Confectionery & Filled Line",

	"croissant": "Puff & Croissant Line", "puff pastry": "Puff & Croissant Line",
	"khari": "Puff & Croissant Line", "danish pastry": "Puff & Croissant Line",

	"fruit rusk": "Rusk & Toast Line", "jeera rusk": "Rusk & Toast Line",
	"rusk": "Rusk & Toast Line", "toast": "Rusk & Toast Line",
	"milk rusk": "Rusk & Toast Line",

	"sour dough": "Specialty Bread Line", "sourdough bread": "Specialty Bread Line",
	"brioche": "Specialty Bread Line", "baguette": "baguette",
	"kulcha":   DefaultGroup,
	"focaccia": "Specialty Bread Line", "ciabatta": "Specialty Bread Line",

	"cream roll": "Confectionery & Filled Line",
	"eclair":     "Confectionery & Filled Line",

	"pizza base": "Pizza Base Line",
	"macaron":    "Macaron Line",
	"donut":      "Donut Line",
	"doughnut":   "Donut Line",

	"biscuit": "Biscuit & Snack Line",
	"cracker": "Biscuit & Snack Line",
	"namkeen": "Biscuit & Snack Line",
	"wafer":   "Biscuit & Snack Line",
	"cookies": "Cookie Line",
}

// stageTemplates maps a product group to its ordered production stages.
var stageTemplates = map[string][]string{
	"Bun & Pav Line": {
		"Mixing", "Dividing", "Forming", "Proofing", "Baking", "Cooling", "Slicing", "Packing",
	},
	"Bread Line": {
		"Mixing", "Dividing", "Forming", "Fermentation", "Baking", "Cooling", "Slicing", "Packing",
	},
	"Cookie Line": {
		"Mixing", "Forming", "Depositing", "Baking", "Cooling", "Packing",
	},
	"Cake Line": {
		"Mixing", "Depositing", "Baking", "Cooling", "Finishing", "Packing",
	},
	"Puff & Croissant Line": {
		"Mixing", "Sheeting", "Forming", "Proofing", "Baking", "Cooling", "Packing",
	},
	"Rusk & Toast Line": {
		"Mixing", "Dividing", "Forming", "Baking", "Cooling", "Slicing", "Re-Baking", "Packing",
	},
	"Specialty Bread Line": {
		"Mixing", "Fermentation", "Dividing", "Forming", "Proofing", "Baking", "Cooling", "Packing",
	},
	"Confectionery & Filled Line": {
		"Mixing", "Depositing", "Forming", "Baking", "Cooling", "Filling", "Finishing", "Packing",
	},
	"Pizza Base Line": {
		"Mixing", "Dividing", "Forming", "Proofing", "Baking", "Cooling", "Packing",
	},
	"Biscuit & Snack Line": {
		"Mixing", "Forming", "Baking", "Cooling", "Packing",
	},
	"Macaron Line": {
		"Mixing", "Depositing", "Baking", "Cooling", "Packing",
	},
	"Donut Line": {
		"Mixing", "Forming", "Proofing", "Baking", "Finishing", "Slicing",
	},
	DefaultGroup: {
		"Mixing", DefaultStage, "Packing",
	},
}

// Vocabulary is the immutable canonical-product vocabulary and routing table
// derived from one catalog snapshot. It is built once per snapshot from the
// curated tables plus catalog-derived defaults and never mutated afterwards.
type Vocabulary struct {
	products []string          // sorted canonical products observed in the catalog
	groups   map[string]string // canonical product -> production-line group
}

// NewVocabulary builds the vocabulary for a catalog snapshot: the union of
// all normalized products seen in the records, each resolved to a group via
// the curated table or DefaultGroup.
func NewVocabulary(records []domain.MachineRecord) *Vocabulary {
	set := make(map[string]struct{})
	for _, rec := range records {
		for _, entry := range strings.Split(rec.Products, ",") {
			p := NormalizeProduct(entry)
			if p == "" || p == "n/a" || p == "nan" {
				continue
			}
			set[p] = struct{}{}
		}
	}

	products := make([]string, 0, len(set))
	for p := range set {
		products = append(products, p)
	}
	sort.Strings(products)

	groups := make(map[string]string, len(curatedProductGroups)+len(products))
	for p, g := range curatedProductGroups {
		groups[p] = g
	}
	for _, p := range products {
		if _, ok := groups[p]; !ok {
			groups[p] = DefaultGroup
		}
	}

	return &Vocabulary{products: products, groups: groups}
}

// Products returns the canonical products in sorted order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Products() []string {
	return v.products
}

// Group resolves a canonical product to its production-line group.
func (v *Vocabulary) Group(product string) string {
	if g, ok := v.groups[product]; ok {
		return g
	}
	return DefaultGroup
}

// Route resolves a canonical product to its ordered production-line stages:
// product -> group -> template, with a single-stage default template for
// groups that have none. Pure lookup, no fuzziness.
func (v *Vocabulary) Route(product string) []string {
	if stages, ok := stageTemplates[v.Group(product)]; ok {
		return stages
	}
	return []string{DefaultStage}
}
