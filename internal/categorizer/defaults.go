package categorizer

import (
	"fmt"

	"ngtax/tax-engine/internal/models"
)

// DefaultCategories returns the compiled-in category rules. Order matters:
// for example "maintenance fee" sits under Bank Charges ahead of the generic
// "maintenance" keyword of Repairs & Maintenance.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name:        models.CategorySalaries,
			Description: "Staff salaries, wages and pension contributions",
			Keywords:    []string{"salary", "salaries", "payroll", "wages", "staff pay", "pension contribution"},
		},
		{
			Name:        models.CategoryRent,
			Description: "Office and shop rent, service charges and property rates",
			Keywords:    []string{"rent", "lease", "tenement", "service charge", "land use charge"},
		},
		{
			Name:        models.CategoryUtilities,
			Description: "Electricity, water and waste services",
			Keywords:    []string{"nepa", "phcn", "ekedc", "ikedc", "aedc", "electricity", "prepaid meter", "water board", "waste", "lawma"},
		},
		{
			Name:        models.CategoryTelecoms,
			Description: "Airtime, data and internet services",
			Keywords:    []string{"mtn", "airtel", "globacom", "glo mobile", "9mobile", "etisalat", "airtime", "data", "internet", "broadband", "spectranet", "starlink"},
		},
		{
			Name:        models.CategoryTransport,
			Description: "Ride hailing, flights, fuel and lodging on business travel",
			Keywords:    []string{"uber", "bolt", "taxi", "flight", "air peace", "arik", "ibom air", "bus fare", "toll", "fuel", "petrol", "diesel", "nnpc", "hotel"},
		},
		{
			Name:        models.CategoryBankCharges,
			Description: "Bank fees, SMS alerts and stamp duty",
			Keywords:    []string{"bank charge", "sms alert", "stamp duty", "transfer fee", "maintenance fee", "commission"},
		},
		{
			Name:        models.CategoryProfessional,
			Description: "Legal, audit, accounting and consulting fees",
			Keywords:    []string{"legal fee", "lawyer", "solicitor", "audit fee", "consultancy", "consulting", "accounting fee", "professional fee"},
		},
		{
			Name:        models.CategoryOfficeSupplies,
			Description: "Stationery and office consumables",
			Keywords:    []string{"stationery", "printer", "toner", "office supplies", "a4 paper", "ink cartridge"},
		},
		{
			Name:        models.CategoryRepairs,
			Description: "Repairs and maintenance of equipment and premises",
			Keywords:    []string{"repair", "maintenance", "servicing", "plumber", "plumbing", "electrician"},
		},
		{
			Name:        models.CategoryMarketing,
			Description: "Adverts, promotions and branding",
			Keywords:    []string{"advert", "marketing", "promotion", "facebook ads", "google ads", "billboard", "branding", "flyer"},
		},
		{
			Name:        models.CategoryInsurance,
			Description: "Insurance premiums",
			Keywords:    []string{"insurance", "premium", "leadway", "aiico", "axa mansard"},
		},
		{
			Name:        models.CategoryTaxes,
			Description: "Tax remittances and government levies",
			Keywords:    []string{"tax", "levy", "lirs", "federal inland revenue", "paye remittance"},
		},
		{
			Name:        models.CategorySoftware,
			Description: "Software licences and subscriptions",
			Keywords:    []string{"subscription", "software", "microsoft", "google workspace", "zoom", "slack", "amazon web services", "dstv", "gotv", "showmax"},
		},
		{
			Name:        models.CategoryMeals,
			Description: "Meals, catering and entertainment",
			Keywords:    []string{"restaurant", "chicken republic", "kfc", "domino", "eatery", "lunch", "dinner", "catering", "entertainment"},
		},
		{
			Name:        models.CategoryMedical,
			Description: "Hospital, pharmacy and HMO payments",
			Keywords:    []string{"hospital", "pharmacy", "clinic", "hmo", "medical", "drugs"},
		},
		{
			Name:        models.CategoryTraining,
			Description: "Training, courses and school fees",
			Keywords:    []string{"training", "course", "seminar", "workshop", "school fees", "tuition", "conference"},
		},
		{
			Name:        models.CategoryDonations,
			Description: "Donations and charitable giving",
			Keywords:    []string{"donation", "charity", "church", "mosque", "zakat", "tithe"},
		},
		{
			Name:        models.CategoryLoans,
			Description: "Loan repayments and interest",
			Keywords:    []string{"loan", "interest", "repayment", "overdraft"},
		},
		{
			Name:        models.CategorySales,
			Description: "Income from sales",
			Keywords:    []string{"sales", "pos settlement", "invoice payment", "customer payment", "proceeds"},
		},
	}
}

// DefaultRuleSet returns a RuleSet over DefaultCategories.
func DefaultRuleSet() *RuleSet {
	rs, err := NewRuleSet(DefaultCategories())
	if err != nil {
		panic(fmt.Sprintf("default categories are invalid: %v", err))
	}
	return rs
}
