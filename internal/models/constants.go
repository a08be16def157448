package models

// CurrencyNGN is the ISO 4217 code of every amount the engine handles.
const CurrencyNGN = "NGN"

// Canonical transaction categories, in declaration order of the default rule set.
const (
	CategorySalaries       = "Salaries & Wages"
	CategoryRent           = "Rent & Rates"
	CategoryUtilities      = "Utilities"
	CategoryTelecoms       = "Telephone & Internet"
	CategoryTransport      = "Transport & Travel"
	CategoryBankCharges    = "Bank Charges"
	CategoryProfessional   = "Professional Fees"
	CategoryOfficeSupplies = "Office Supplies"
	CategoryRepairs        = "Repairs & Maintenance"
	CategoryMarketing      = "Advertising & Marketing"
	CategoryInsurance      = "Insurance"
	CategoryTaxes          = "Taxes & Levies"
	CategorySoftware       = "Software & Subscriptions"
	CategoryMeals          = "Meals & Entertainment"
	CategoryMedical        = "Medical"
	CategoryTraining       = "Training & Education"
	CategoryDonations      = "Donations"
	CategoryLoans          = "Loans & Interest"
	CategorySales          = "Sales Revenue"

	// CategoryUncategorized marks a transaction that needs manual categorization.
	CategoryUncategorized = "Uncategorized"
)

// File permissions
const (
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
