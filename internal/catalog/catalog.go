// Package catalog holds the static KPI and service-provider lookup tables.
// The content is hand-curated and returned verbatim; there is no computed
// behavior here. Categories and providers are slices (not maps) to keep JSON
// output deterministic.
package catalog

// KPICategory groups suggested KPI names under one category.
type KPICategory struct {
	Category string   `json:"category"`
	KPIs     []string `json:"kpis"`
}

// Provider is one recommended external service provider.
type Provider struct {
	Name     string   `json:"name"`
	Features []string `json:"features"`
	Notes    string   `json:"notes,omitempty"`
}

// ServiceCategory groups recommended providers for one business function.
type ServiceCategory struct {
	Category  string     `json:"category"`
	Providers []Provider `json:"providers"`
}

// KPIs returns the suggested KPI catalog: five categories covering finance,
// customers, marketing, operations and HR. Tailor to the business model;
// these are starting points, not mandates.
func KPIs() []KPICategory {
	return []KPICategory{
		{
			Category: "financial",
			KPIs: []string{
				"Annual revenue",
				"Gross margin",
				"Net profit",
				"EBITDA",
				"Cash burn rate",
				"Runway (months of operating cash)",
			},
		},
		{
			Category: "customer",
			KPIs: []string{
				"Number of customers",
				"Customer acquisition cost (CAC)",
				"Customer lifetime value (LTV)",
				"Churn rate",
				"Net promoter score (NPS)",
			},
		},
		{
			Category: "marketing",
			KPIs: []string{
				"Website traffic",
				"Leads generated",
				"Conversion rate",
				"Cost per lead",
				"Social media engagement",
			},
		},
		{
			Category: "operations",
			KPIs: []string{
				"Product/service delivery time",
				"Defect/return rate",
				"Operational efficiency (output per employee)",
				"Inventory turnover rate",
				"On-time project completion percentage",
			},
		},
		{
			Category: "hr",
			KPIs: []string{
				"Employee retention rate",
				"Employee satisfaction score",
				"Time to hire",
				"Diversity ratio",
				"AI adoption in HR processes",
			},
		},
	}
}

// Services returns the service-provider catalog: five categories (legal,
// payroll, accounting, marketing, hr_ai), each with named providers and
// feature lists.
func Services() []ServiceCategory {
	return []ServiceCategory{
		{
			Category: "legal",
			Providers: []Provider{
				{
					Name:     "LegalZoom",
					Features: []string{"Unlimited legal consultations", "Annual business evaluation", "150+ legal forms"},
					Notes:    "Top overall online legal service for startups, offering incorporation, intellectual property and compliance support",
				},
				{
					Name:     "Firstbase.io",
					Features: []string{"Automated compliance reminders", "Registered agent service", "Annual reports and franchise tax filings"},
					Notes:    "Best for startup incorporation and compliance bundles",
				},
				{
					Name:     "Rocket Lawyer",
					Features: []string{"On-call attorneys", "Customizable legal forms", "Document defence"},
					Notes:    "Best for complex legal issues and access to attorneys",
				},
				{
					Name:     "Clerky",
					Features: []string{"Variety of fundraising documents", "Pay-per-use filing"},
					Notes:    "Best for fundraising and accurate legal paperwork",
				},
			},
		},
		{
			Category: "payroll",
			Providers: []Provider{
				{
					Name:     "Gusto",
					Features: []string{"Automatic federal, state and local tax filing", "Unlimited payroll runs", "State new-hire reporting", "PTO and holiday pay"},
					Notes:    "Full-service payroll for small businesses",
				},
				{
					Name:     "Wave Payroll",
					Features: []string{"Full service payroll with tax filing in selected states", "Self-service option for other states", "Integration with Wave accounting"},
					Notes:    "Payroll add-on to the free Wave accounting platform",
				},
				{
					Name:     "OnPay",
					Features: []string{"Digital document storage", "HR compliance tracking", "Integration with QuickBooks and Xero"},
					Notes:    "Best for recordkeeping and HR compliance",
				},
				{
					Name:     "Rippling",
					Features: []string{"Automated payroll processing", "Integration with HR, IT and benefits", "500+ third-party tool integrations"},
					Notes:    "Best for startups wanting seamless payroll and HR integration",
				},
			},
		},
		{
			Category: "accounting",
			Providers: []Provider{
				{
					Name:     "Brex",
					Features: []string{"Automatic expense categorization", "Real-time spend tracking", "Customizable approval workflows", "Detailed financial reporting", "1000+ software integrations"},
					Notes:    "All-in-one expense management and accounting platform tailored for startups",
				},
				{
					Name:     "QuickBooks Online",
					Features: []string{"Automated bank feeds", "Customizable invoicing", "Expense tracking with receipt capture", "Inventory management", "40+ reporting templates"},
					Notes:    "Industry-standard cloud accounting solution with extensive integrations",
				},
				{
					Name:     "Xero",
					Features: []string{"Bank reconciliation with machine learning", "Customizable invoicing", "Project costing and time tracking", "Inventory tracking", "Multi-currency support"},
					Notes:    "User-friendly cloud accounting system with strong international support",
				},
				{
					Name:     "Sage Intacct",
					Features: []string{"Revenue recognition automation", "Multi-entity management", "Customizable reporting", "Project accounting", "AI-powered timesheets"},
					Notes:    "Best for complex or multi-entity startups requiring GAAP/IFRS compliance",
				},
				{
					Name:     "Wave Accounting",
					Features: []string{"Free double-entry bookkeeping", "Customizable invoicing", "Receipt scanning", "Basic financial reports", "Multi-currency support"},
					Notes:    "Best free accounting software for small teams and freelancers",
				},
			},
		},
		{
			Category: "marketing",
			Providers: []Provider{
				{
					Name:     "HubSpot Marketing",
					Features: []string{"CRM integration", "Marketing automation", "Email and social media management", "Lead scoring", "Analytics and reporting"},
					Notes:    "Comprehensive platform that combines marketing, sales and service tools",
				},
				{
					Name:     "Canva",
					Features: []string{"Drag-and-drop design editor", "Templates and stock media", "Logo maker", "Animation and video creation", "Collaboration tools"},
					Notes:    "Easy graphics creation for branding, content and presentations",
				},
				{
					Name:     "Google Analytics",
					Features: []string{"Website traffic insights", "Goal and conversion tracking", "Audience segmentation", "Reporting dashboards", "Integration with advertising platforms"},
					Notes:    "Essential tool for understanding website performance and user behaviour",
				},
				{
					Name:     "Mailchimp or Klaviyo",
					Features: []string{"Email marketing automation", "Personalized campaigns", "Segmentation and A/B testing", "Analytics", "Ecommerce integrations"},
					Notes:    "Popular platforms for email marketing and customer engagement",
				},
				{
					Name:     "Buffer or Hootsuite",
					Features: []string{"Social media scheduling", "Multi-platform posting", "Engagement tracking", "Analytics", "Team collaboration"},
					Notes:    "Tools to plan and analyse social media content",
				},
			},
		},
		{
			Category: "hr_ai",
			Providers: []Provider{
				{
					Name:     "AI-powered HR tools",
					Features: []string{"Automated candidate screening", "Chatbots for recruiting", "Predictive analytics for flight risks", "Sentiment analysis for engagement", "Personalized learning and development"},
					Notes:    "AI boosts HR productivity and enables proactive talent management",
				},
			},
		},
	}
}
