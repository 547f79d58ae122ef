package interview

// Choice is one selectable answer.
type Choice struct {
	Value string
	Label string
}

// ProjectTypes are the selectable project types; the first is the default.
var ProjectTypes = []Choice{
	{"startup", "Startup (MVP, fast iteration)"},
	{"enterprise", "Enterprise (security, compliance)"},
	{"personal", "Personal (portfolio, blog)"},
	{"agency", "Agency (client projects)"},
}

// Features are the optional capabilities a project can start with.
var Features = []Choice{
	{"auth", "Authentication (NextAuth.js)"},
	{"database", "Database (Prisma + PostgreSQL)"},
	{"payments", "Payments (Stripe)"},
	{"email", "Email (Resend)"},
	{"tailwind", "Styling (Tailwind CSS)"},
	{"analytics", "Analytics (Vercel Analytics)"},
	{"i18n", "i18n (internationalization)"},
	{"seo", "SEO (metadata, sitemap)"},
}

// Priorities are the selectable main focuses; the first is the default.
var Priorities = []Choice{
	{"speed", "Speed (fast development)"},
	{"security", "Security (security first)"},
	{"scale", "Scale (scalability)"},
	{"revenue", "Revenue (monetization)"},
}
