package content

// Brand and contact constants shared by every page.
const (
	Brand          = "Helix Craftworks"
	BrandMark      = Brand + "®"
	Tagline        = "Custom Renovations. Visible craftsmanship. Built by " + BrandMark + "."
	ContactEmail   = "chris@helixcraftworks.com"
	CareersEmail   = "careers@helixcraftworks.com"
	StoreURL       = "https://store.helixcraftworks.com"
	StoreName      = "Loom & Lathe"
	ClientHubURL   = "https://clienthub.getjobber.com/client_hubs/051c9a8d-bb77-4488-a617-8f5d82fe8a39/login/new?source=share_login"
	ServiceArea    = "Pennsylvania-based. Travel considered case-by-case."
	DefaultCTA     = "Request a walkthrough"
	ServicesBrand  = "Helix Services"
	ServicesBrandM = ServicesBrand + " (TM)"
)

// Card is a titled blurb with an optional link.
type Card struct {
	Title string
	Copy  string
	Href  string
}

// Step is one numbered stage of the delivery process.
type Step struct {
	Label string
	Title string
	Copy  string
}

// Stat is a value/label pair shown on a snapshot.
type Stat struct {
	Value string
	Label string
}

// Snapshot is one slide of the delivery carousel.
type Snapshot struct {
	Title       string
	Tag         string
	Description string
	Stats       []Stat
}

// FAQ is a question and answer pair.
type FAQ struct {
	Q string
	A string
}

// Block is a titled bullet list.
type Block struct {
	Title string
	Items []string
}

// Position is an open role on the careers page.
type Position struct {
	Title   string
	Summary string
	Bullets []string
}

var Highlights = []string{
	"Renovations & remodels",
	"Project planning & sequencing",
	"Finish carpentry & millwork",
	"Specialty details as needed",
	"Preventive maintenance & repairs",
}

var Services = []Card{
	{
		Title: "Renovations & Remodels",
		Copy:  "Full-scope residential renovations managed end to end, from early planning and permits through final inspection and close-out.",
		Href:  "/renovations",
	},
	{
		Title: "General Contracting",
		Copy:  "Scheduling, sequencing, and trade coordination handled directly to keep scope, budget, and finish quality aligned throughout the build.",
		Href:  "/general-contracting",
	},
	{
		Title: "Project Planning & Sequencing",
		Copy:  "Layouts, materials, and construction order defined before work begins to reduce delays, conflicts, and mid-project changes.",
		Href:  "#process",
	},
	{
		Title: "Finish Carpentry & Millwork",
		Copy:  "Trim, paneling, built-ins, and architectural details executed with tight tolerances and careful alignment to the existing home.",
		Href:  "/finish-carpentry-millwork",
	},
	{
		Title: "Specialty Details & Custom Elements",
		Copy:  "Complex features such as concealed storage, integrated millwork, and custom transitions handled as part of a larger renovation scope.",
		Href:  "#specialty-work",
	},
	{
		Title: "Repairs, Upgrades & Phased Work",
		Copy:  "Targeted improvements and phased renovations planned to integrate cleanly with future work and long-term goals.",
		Href:  "/repairs-upgrades",
	},
}

var SpecialtyWork = []Block{
	{Title: "Capabilities", Items: []string{
		"Concealed storage and integrated panels",
		"Aligned transitions with flooring and trim",
		"Built-ins tied to the existing architecture",
	}},
	{Title: "How we deliver", Items: []string{
		"Details approved before fabrication",
		"Installed with site protection and dust control",
		"Sequenced to support the overall schedule",
	}},
}

var Steps = []Step{
	{Label: "01", Title: "Discover", Copy: "We walk the space, review structure, and define scope so the work is understood before decisions are made."},
	{Label: "02", Title: "Plan", Copy: "Trades are sequenced, materials are locked, and details are finalized before work begins."},
	{Label: "03", Title: "Build", Copy: "On-site execution with active supervision, dust control, clean lines, and daily check-ins through handoff."},
}

var Snapshots = []Snapshot{
	{
		Title:       "Schedule & Scope Control",
		Tag:         "Built like a plan, not a guess",
		Description: "Renovations managed with clear sequencing, documented scope, and steady oversight from start to finish.",
		Stats: []Stat{
			{Value: "40+", Label: "Renovations managed end-to-end"},
			{Value: "90%+", Label: "Milestones met as scheduled"},
			{Value: "0", Label: "Unapproved change orders"},
		},
	},
	{
		Title:       "Plan Before We Cut",
		Tag:         "Decisions made early. Fewer surprises later.",
		Description: "Layouts, materials, and details are locked before work begins so installs move cleanly and predictably.",
		Stats: []Stat{
			{Value: "2-4 wks", Label: "Typical planning window before site start"},
			{Value: "100%", Label: "Material selections approved pre-demo"},
			{Value: "1", Label: "Coordinated plan across trades"},
		},
	},
	{
		Title:       "Clean Sites, Clear Progress",
		Tag:         "Respect for the home while work is underway",
		Description: "Active job sites are protected, organized, and reset daily so homeowners can live comfortably during renovations.",
		Stats: []Stat{
			{Value: "Daily cleanup", Label: "On active sites"},
			{Value: "Dust control", Label: "Used on all interior projects"},
			{Value: "Protected finishes", Label: "Floors, trim, and access paths"},
		},
	},
	{
		Title:       "Finish-Driven Execution",
		Tag:         "Details noticed because they're right",
		Description: "Trim, cabinetry, and transitions installed with tight tolerances and an eye for alignment.",
		Stats: []Stat{
			{Value: "Tight tolerances", Label: "On trim, reveals, and cabinetry"},
			{Value: "Matched materials", Label: "Integrated with existing architecture"},
			{Value: "Zero", Label: "Finish callbacks on completed work"},
		},
	},
	{
		Title:       "Clear, Direct Communication",
		Tag:         "No chasing updates. No guesswork.",
		Description: "Clients receive consistent updates and a single point of contact throughout the project.",
		Stats: []Stat{
			{Value: "Weekly", Label: "Schedule and progress updates"},
			{Value: "1", Label: "Point of contact start to finish"},
			{Value: "48 hrs", Label: "Typical response time during active work"},
		},
	},
	{
		Title:       "Advanced Carpentry Capability",
		Tag:         "Complex details, handled quietly",
		Description: "Specialty features like hidden doors and complex millwork are integrated seamlessly within larger renovation scopes.",
		Stats: []Stat{
			{Value: "Dozens", Label: "Specialty installations completed"},
			{Value: "Integrated", Label: "Into full-room and whole-home projects"},
			{Value: "No novelty installs", Label: "Without architectural context"},
		},
	},
	{
		Title:       "Built for the Next Phase",
		Tag:         "Work that earns repeat calls",
		Description: "Many clients return for additional rooms or future projects after the first renovation is complete.",
		Stats: []Stat{
			{Value: "5/5", Label: "Average client rating"},
			{Value: "Repeat clients", Label: "Drive most new work"},
			{Value: "Next-phase ready", Label: "Projects planned with longevity in mind"},
		},
	},
}

var FAQs = []FAQ{
	{Q: "Where do you work?", A: "Pennsylvania and nearby markets for renovations and finish-driven builds. Travel projects case-by-case."},
	{Q: "Do you design and build?", A: "Yes. Concept through completion, collaborating with your architect or designer when provided."},
	{Q: "What makes a great first call?", A: "Share goals, dimensions, drawings if available, and timing. We will return options, allowances, and a clear plan."},
}

var ContactPromises = []string{
	"Renovations, remodels, and finish-driven improvements",
	"Clear scope, clean sequencing, and steady updates",
	"Veteran-owned. Detail-forward execution.",
}

var BrandSplit = []string{
	"Helix Craftworks: renovations, remodels, sequencing, finish work.",
	"Helix Services: preventive maintenance plans and service visits.",
	"Same leadership, tailored workflows for each type of request.",
}

// Helix Services page.

var ServicePillars = []Card{
	{Title: "Preventive maintenance", Copy: "Seasonal and annual routines tuned to the equipment and environment instead of generic checklists."},
	{Title: "Measured repairs", Copy: "Diagnostics that keep finishes and adjacent systems safe, with clear approvals before work proceeds."},
	{Title: "Documentation", Copy: "Status notes, photos, and next-step recommendations that prevent surprises on future visits."},
	{Title: "Coordination", Copy: "Site access, zoning, condensate routes, and specialty areas planned before we mobilize."},
}

var ServiceSystems = []Block{
	{Title: "HVAC Preventive Maintenance and Zoning Systems", Items: []string{"Seasonal readiness for heating and cooling", "Zoned controls and damper checks", "Condensate routes inspected and cleared"}},
	{Title: "Mechanical Systems Oversight", Items: []string{"Fans, pumps, and venting observations", "Equipment condition and access notes", "Safety and clearance checks where accessible"}},
	{Title: "Electrical and Control Inspections", Items: []string{"Panel label sanity checks", "Disconnects and safety observations", "Low-voltage and control board status review"}},
	{Title: "Preventive Maintenance for Helix-Built or Modified Work", Items: []string{"Scopes aligned to installed systems", "Finish protection and access documented", "Recommendations tied to the original build plan"}},
	{Title: "Facilities Documentation and System Records", Items: []string{"Visit notes and photos stored", "Access details retained for future visits", "Recommendations tracked for next steps"}},
	{Title: "Priority Response and On-Call Support", Items: []string{"Scheduling based on safety and capacity", "Upgrade path for faster response when available", "Direct contact path with the service lead"}},
}

var ServiceApproach = []Card{
	{Title: "Planning", Copy: "Scope and access confirmed before we arrive, including ladders, roof, and finish-sensitive areas."},
	{Title: "Diagnostics", Copy: "Root-cause checks with system protection first; we avoid quick fixes that create later risk."},
	{Title: "Coordination", Copy: "If a trade partner is needed, we align visits to minimize disruption and duplication."},
	{Title: "Follow-through", Copy: "Notes after each visit so future upgrades and seasonal checks stay predictable."},
}

var ServicePrograms = []Block{
	{Title: "Preventive maintenance", Items: []string{"Seasonal visits planned around heating and cooling swings", "Condensate and moisture checkpoints in shoulder seasons", "Documentation that carries forward to future work"}},
	{Title: "Service visits and repairs", Items: []string{"Diagnostics with approvals before corrective steps", "Finish-sensitive containment in place before opening assemblies", "Coordination with parts availability and site access"}},
}

var ServiceRhythm = []Block{
	{Title: "Fall heating readiness", Items: []string{"Zone calls and safety circuits checked", "Vent and condensate routes inspected and cleared", "Combustion, blower, and filter sanity checks"}},
	{Title: "Spring cooling readiness", Items: []string{"Zone dampers and control boards reviewed", "Condensate pans and traps inspected after heating season", "Coil, line set insulation, and disconnect observations"}},
}

// Careers page.

var CareerFit = []string{
	"Comfortable sequencing work and keeping sites clean",
	"Steady communication with clients and the team",
	"Care for finish quality on every task",
}

var CareerValues = []Block{
	{Title: "What we value", Items: []string{"Respect for the trade, the client, and the home", "Clear communication and follow-through", "Attention to detail at every stage of the build", "Clean job sites and steady progress"}},
	{Title: "What you can expect", Items: []string{"Work planned and sequenced so the job runs cleanly", "Standards that stay consistent from start to close-out", "A team that takes pride in finish quality and professionalism", "Room to grow through real responsibility, not chaos"}},
}

var Positions = []Position{
	{
		Title:   "Lead Craftsman / Project Manager",
		Summary: "Own jobsite execution and client communication. Drive schedule, sequencing, and finish quality from start to close-out.",
		Bullets: []string{"Lead on-site work and coordinate trades", "Maintain scope, schedule, and quality standards", "Communicate daily/weekly updates to clients", "Solve field issues with a calm, disciplined approach"},
	},
	{
		Title:   "Finish-Forward Carpenter",
		Summary: "Skilled field carpenter focused on framing, trim, and renovation details that close cleanly.",
		Bullets: []string{"Framing, trim, millwork installs, punch-list completion", "Reads plans, checks dimensions, maintains alignment and fit", "Works cleanly in occupied homes (dust control and protection)", "Helps maintain jobsite order and daily resets"},
	},
	{
		Title:   "Field Construction Technician I",
		Summary: "Entry-level role supporting renovation work, material handling, site protection, and daily jobsite flow.",
		Bullets: []string{"Demo support, cleanup, material staging, basic tool use", "Site protection (floors, paths, dust barriers) and daily reset", "Learns processes, follows direction, shows up ready", "Growth path into skilled carpentry over time"},
	},
}

var ApplyPromises = []string{
	"Roles from entry-level to lead, focused on finish-forward renovations",
	"Calm, disciplined job sites with steady communication",
}
