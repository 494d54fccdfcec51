package forms

import (
	"helixcraftworks.com/helix-web/internal/content"
	"helixcraftworks.com/helix-web/internal/routes"
)

const (
	ContactName = "contact"
	CareersName = "careers-application"

	DefaultProjectType  = "Kitchen renovation"
	ServicesProjectType = "Preventive maintenance"

	leadCraftworks = "Helix Craftworks"
	leadServices   = "Helix Services"

	blockServices = "services"
	blockProject  = "project"
	blockCustom   = "custom-budget"
)

// ServiceTypes are the project types routed to Helix Services.
var ServiceTypes = []string{
	"Preventive maintenance",
	"Repairs / service visit",
	"HVAC / airflow",
	"Moisture / condensate",
	"Plumbing / electrical",
	"Light commercial",
}

// LeadType derives the leadType hidden value from the chosen project type.
func LeadType(projectType string) string {
	if contains(ServiceTypes, projectType) {
		return leadServices
	}
	return leadCraftworks
}

// Contact is the consult request form. Its project type defaults to the
// maintenance option on the Helix Services page.
func Contact(path string) *Definition {
	projectType := DefaultProjectType
	if path == routes.PathHelixServices {
		projectType = ServicesProjectType
	}
	return &Definition{
		Name:           ContactName,
		Strategy:       URLEncoded{},
		FallbackEmail:  content.ContactEmail,
		SubmitLabel:    content.DefaultCTA,
		SuccessMessage: "Thanks for reaching out. We will reply within one business day.",
		Disclaimer:     "By submitting, you agree to let us contact you about this request. We keep conversations confidential.",
		Blocks: []Block{
			{Name: blockServices, Control: "projectType", When: ServiceTypes},
			{Name: blockProject, Control: "projectType", When: ServiceTypes, Unless: true},
			{Name: blockCustom, Control: "budget", When: []string{"Custom"}},
		},
		Fields: []Field{
			{Name: "form-name", Kind: KindHidden, Default: ContactName},
			{Name: "leadType", Kind: KindHidden, Derive: func(i *Instance) string {
				return LeadType(i.Value("projectType"))
			}},
			{Name: "bot-field", Label: "Don't fill this out if you're human:", Kind: KindHoneypot},
			{Name: "name", Label: "Name", Kind: KindText, Required: true, Placeholder: "Gene Gear"},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "me@helix.com"},
			{Name: "location", Label: "Project location (city/town)", Kind: KindText, Placeholder: "York, PA"},
			{Name: "startTimeframe", Label: "When are you hoping to start?", Kind: KindSelect, Default: "ASAP / next 30 days",
				Options: []string{"ASAP / next 30 days", "1-3 months", "3-6 months", "6+ months", "Not sure yet"}},
			{Name: "projectType", Label: "Project type", Kind: KindSelect, Default: projectType, Wide: true, Options: []string{
				DefaultProjectType,
				"Bathroom renovation",
				"Basement / lower level",
				"Whole-home / multi-room",
				"Structural / framing work",
				"Finish carpentry & built-ins",
				"Repairs / phased upgrades",
				"Preventive maintenance",
				"Repairs / service visit",
				"HVAC / airflow",
				"Moisture / condensate",
				"Plumbing / electrical",
				"Light commercial",
				"Specialty detail (concealed storage / hidden door)",
				"Not sure yet (help me scope it)",
			}},
			{Name: "assetType", Label: "System / asset type", Kind: KindSelect, Block: blockServices, Default: "HVAC",
				Options: []string{"HVAC", "Plumbing", "Electrical", "Envelope / moisture", "Multi-trade", "Other"}},
			{Name: "recurrence", Label: "Recurrence", Kind: KindSelect, Block: blockServices, Default: "One-time service",
				Options: []string{"One-time service", "Seasonal (spring/fall)", "Quarterly", "Annual", "Not sure yet"}},
			{Name: "responseTier", Label: "Response tier", Kind: KindSelect, Block: blockServices, Default: "Standard next-day",
				Options: []string{"Standard next-day", "Same-day upgrade", "Flex (schedule with project)"}},
			{Name: "urgency", Label: "Urgency", Kind: KindSelect, Block: blockServices, Default: "Routine",
				Options: []string{"Routine", "Urgent (48 hours)", "Outage / safety issue"}},
			{Name: "accessNotes", Label: "Access or site notes", Kind: KindText, Block: blockServices, Wide: true,
				Placeholder: "Site contact, access hours, lockbox, roof/ladder, parking."},
			{Name: "budget", Label: "Budget range", Kind: KindSelect, Block: blockProject, Default: "Not sure yet", Wide: true,
				Options: []string{"< $5,000", "$5,000-10,000", "$10k-25k", "$25k-50k", "$50k-100k", "$100k+", "Custom", "Not sure yet"}},
			{Name: "customBudget", Label: "Custom budget", Kind: KindText, Block: blockCustom, Wide: true,
				Placeholder: "Enter your budget (e.g., $15,000)"},
			{Name: "message", Label: "Project context", Kind: KindTextarea, Required: true, Rows: 4, Wide: true,
				Placeholder: "Rooms involved, what's changing, rough dimensions, desired start date, and any links/photos."},
		},
	}
}

// Skills are the checkbox options on the careers application.
var Skills = []string{
	"Demo",
	"Framing",
	"Drywall / finishing",
	"Trim / finish carpentry",
	"Cabinet / built-in install",
	"Tile / bath work",
	"Painting",
	"Light electrical",
	"Light plumbing",
}

// ResumeMaxBytes caps resume uploads.
const ResumeMaxBytes = 8 << 20

// CareersApplication is the job application form. It posts multipart so the
// resume travels with the fields.
func CareersApplication() *Definition {
	positions := make([]string, 0, len(content.Positions)+1)
	for _, p := range content.Positions {
		positions = append(positions, p.Title)
	}
	positions = append(positions, "Other / Not sure yet")
	yesNo := []string{"Yes", "No"}

	return &Definition{
		Name:           CareersName,
		Strategy:       Multipart{},
		FallbackEmail:  content.CareersEmail,
		SubmitLabel:    "Submit application",
		SuccessMessage: "Application received. If it's a fit, we'll reach out.",
		Fields: []Field{
			{Name: "form-name", Kind: KindHidden, Default: CareersName},
			{Name: "bot-field", Label: "Don't fill this out:", Kind: KindHoneypot},
			{Name: "name", Label: "Full name", Kind: KindText, Required: true, Placeholder: "Jordan Ellis"},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "you@helixcraftworks.com"},
			{Name: "phone", Label: "Phone", Kind: KindTel, Required: true, Placeholder: "(555) 123-4567"},
			{Name: "position", Label: "Position applying for", Kind: KindSelect, Required: true, Default: positions[0], Options: positions},
			{Name: "location", Label: "Location", Kind: KindText, Required: true, Placeholder: "City / Town"},
			{Name: "availability", Label: "Availability", Kind: KindSelect, Required: true, Default: "Full-time",
				Options: []string{"Full-time", "Part-time", "Contract / 1099"}},
			{Name: "startTimeframe", Label: "Start timeframe", Kind: KindSelect, Required: true, Default: "ASAP",
				Options: []string{"ASAP", "2–4 weeks", "1–3 months", "Not sure yet"}},
			{Name: "experience", Label: "Experience level", Kind: KindSelect, Required: true, Default: "Entry-level",
				Options: []string{"Entry-level", "1–3 years", "3–7 years", "7+ years"}},
			{Name: "transportation", Label: "Reliable transportation?", Kind: KindSelect, Required: true, Default: "Yes", Options: yesNo},
			{Name: "driver", Label: "Licensed driver?", Kind: KindSelect, Required: true, Default: "Yes", Options: yesNo},
			{Name: "skills", Label: "Skills", Kind: KindCheckbox, Wide: true, Options: Skills},
			{Name: "tools", Label: "Tools", Kind: KindSelect, Default: "Basic hand tools", Wide: true,
				Options: []string{"Basic hand tools", "Full carpentry kit", "Not yet"}},
			{Name: "recentWork", Label: "Tell us about your recent work and what you want to build next.", Kind: KindTextarea, Rows: 4, Wide: true,
				Placeholder: "Briefly describe recent projects, responsibilities, and the type of work you want to focus on."},
			{Name: "portfolio", Label: "Reference / portfolio link", Kind: KindURL, Wide: true, Placeholder: "https://..."},
			{Name: "resume", Label: "Resume", Kind: KindFile, Accept: []string{".pdf", ".doc", ".docx"}, MaxBytes: ResumeMaxBytes, Wide: true},
		},
	}
}

// Lookup returns the definition for a form-name as rendered on path.
func Lookup(name, path string) (*Definition, error) {
	switch name {
	case ContactName:
		return Contact(path), nil
	case CareersName:
		return CareersApplication(), nil
	default:
		return nil, ErrUnknownForm
	}
}

// ForPage returns the form shown on a page variant, or nil when it has none.
func ForPage(variant routes.Variant, path string) *Definition {
	switch variant {
	case routes.VariantHome, routes.VariantServices:
		return Contact(path)
	case routes.VariantCareers:
		return CareersApplication()
	default:
		return nil
	}
}
